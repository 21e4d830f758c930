package codec

import "github.com/hupe1980/bytecast/core"

// Encoding identifies a supported byte-to-text alphabet.
type Encoding int

const (
	// Base64 is the standard base64 alphabet with = padding. It is the zero
	// value, so unconfigured call sites encode to base64.
	Base64 Encoding = iota
	// Hex is lowercase hexadecimal, two digits per byte, no separators.
	Hex
)

// String returns the lowercase name of the encoding.
func (e Encoding) String() string {
	switch e {
	case Hex:
		return "hex"
	default:
		return "base64"
	}
}

// Codec is a deterministic, invertible mapping between byte sequences and
// encoded text. EncodeToString is total; DecodeString fails on input that is
// not valid text for the codec's alphabet, wrapping core.ErrMalformedText.
type Codec interface {
	EncodeToString(data []byte) string
	DecodeString(text string) ([]byte, error)
}

// For returns the Codec implementing enc for the given environment: the
// native primitives on servers, the portable character-iteration path in
// browsers. Unknown Encoding values select base64.
func For(enc Encoding, env core.Environment) Codec {
	portable := env.Effective() == core.EnvironmentBrowser
	if enc == Hex {
		if portable {
			return hexPortable{}
		}
		return hexNative{}
	}
	if portable {
		return base64Portable{}
	}
	return base64Native{}
}
