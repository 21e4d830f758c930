package codec

import (
	"fmt"
	"strings"

	"github.com/hupe1980/bytecast/core"
)

// Compile-time checks that the portable codecs satisfy the Codec interface.
var (
	_ Codec = base64Portable{}
	_ Codec = hexPortable{}
)

const (
	base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64Pad      = '='

	invalidSextet = 0xFF
)

// base64Reverse maps an ASCII byte to its 6-bit value, or invalidSextet.
var base64Reverse = func() [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = invalidSextet
	}
	for i := 0; i < len(base64Alphabet); i++ {
		table[base64Alphabet[i]] = byte(i)
	}
	return table
}()

// base64Portable computes standard padded base64 by character-code
// iteration, without the native encoding primitives.
type base64Portable struct{}

func (base64Portable) EncodeToString(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow((len(data) + 2) / 3 * 4)
	for i := 0; i < len(data); i += 3 {
		rem := len(data) - i
		n := uint32(data[i]) << 16
		if rem > 1 {
			n |= uint32(data[i+1]) << 8
		}
		if rem > 2 {
			n |= uint32(data[i+2])
		}
		b.WriteByte(base64Alphabet[n>>18&0x3F])
		b.WriteByte(base64Alphabet[n>>12&0x3F])
		if rem > 1 {
			b.WriteByte(base64Alphabet[n>>6&0x3F])
		} else {
			b.WriteByte(base64Pad)
		}
		if rem > 2 {
			b.WriteByte(base64Alphabet[n&0x3F])
		} else {
			b.WriteByte(base64Pad)
		}
	}
	return b.String()
}

func (base64Portable) DecodeString(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}
	if len(text)%4 != 0 {
		return nil, fmt.Errorf("%w: base64 length %d is not a multiple of 4", core.ErrMalformedText, len(text))
	}
	trimmed := len(text)
	for trimmed > 0 && text[trimmed-1] == base64Pad {
		trimmed--
	}
	if pad := len(text) - trimmed; pad > 2 {
		return nil, fmt.Errorf("%w: base64 input has %d padding characters", core.ErrMalformedText, pad)
	}
	out := make([]byte, 0, len(text)/4*3)
	var acc uint32
	bits := 0
	for i := 0; i < trimmed; i++ {
		// Padding inside the payload lands here as an invalid character.
		v := base64Reverse[text[i]]
		if v == invalidSextet {
			return nil, fmt.Errorf("%w: invalid base64 character %q", core.ErrMalformedText, text[i])
		}
		acc = acc<<6 | uint32(v)
		bits += 6
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
		}
	}
	return out, nil
}

// hexPortable computes lowercase hex by nibble lookup, without the native
// encoding primitives.
type hexPortable struct{}

const hexDigits = "0123456789abcdef"

func (hexPortable) EncodeToString(data []byte) string {
	out := make([]byte, 2*len(data))
	for i, v := range data {
		out[2*i] = hexDigits[v>>4]
		out[2*i+1] = hexDigits[v&0x0F]
	}
	return string(out)
}

func (hexPortable) DecodeString(text string) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, fmt.Errorf("%w: hex length %d is odd", core.ErrMalformedText, len(text))
	}
	out := make([]byte, len(text)/2)
	for i := range out {
		hi, ok := hexNibble(text[2*i])
		lo, ok2 := hexNibble(text[2*i+1])
		if !ok || !ok2 {
			return nil, fmt.Errorf("%w: invalid hex character at offset %d", core.ErrMalformedText, 2*i)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

// hexNibble decodes one hex digit. Uppercase digits are accepted on decode
// even though encoding always emits lowercase.
func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
