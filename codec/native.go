package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/hupe1980/bytecast/core"
)

// Compile-time checks that the native codecs satisfy the Codec interface.
var (
	_ Codec = base64Native{}
	_ Codec = hexNative{}
)

// base64Native maps bytes to standard padded base64 via encoding/base64.
type base64Native struct{}

func (base64Native) EncodeToString(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func (base64Native) DecodeString(text string) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedText, err)
	}
	return out, nil
}

// hexNative maps bytes to lowercase hex via encoding/hex.
type hexNative struct{}

func (hexNative) EncodeToString(data []byte) string {
	return hex.EncodeToString(data)
}

func (hexNative) DecodeString(text string) ([]byte, error) {
	out, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedText, err)
	}
	return out, nil
}
