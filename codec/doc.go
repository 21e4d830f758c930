// Package codec implements the byte-to-text mappings used by bytecast: base64
// (standard alphabet, = padding) and lowercase hex. Each encoding has two
// interchangeable implementations selected by execution environment. The
// native path delegates to the standard byte-buffer primitives; the portable
// path computes the same mapping by character-code iteration for platforms
// where those primitives are unavailable. Both paths produce byte-identical
// encoded output for identical input, and decode(encode(b)) == b holds for
// every byte sequence in both encodings on both paths.
package codec
