package core

import (
	"fmt"
	"io"
	"net/url"
)

// Source represents a polymorphic conversion input. Concrete source types
// implement the unexported isSource marker enabling a closed set: every
// consumer can type-switch over exactly five variants.
type Source interface{ isSource() }

// FilePathSource is a local file system path. Only valid in the server
// environment; browser builds have no path-based file access.
type FilePathSource struct {
	Path string // Absolute or relative path to a readable file
}

// isSource implements the Source interface for FilePathSource.
func (FilePathSource) isSource() {}

// URLSource is an absolute URL fetched with a single GET request. data: URLs
// are accepted and decoded inline without network I/O.
type URLSource struct {
	URL string // Absolute URL (scheme and host present) or a data: URL
}

// isSource implements the Source interface for URLSource.
func (URLSource) isSource() {}

// FileHandleSource is a File/Blob-like handle: content already materialized
// in memory together with a name and optional media type.
type FileHandleSource struct {
	Name     string // Original file name hint
	MimeType string // Optional IANA media type
	Data     []byte // Full content
}

// isSource implements the Source interface for FileHandleSource.
func (FileHandleSource) isSource() {}

// BufferSource is a raw in-memory byte buffer. No acquisition is needed; the
// bytes are used as-is.
type BufferSource struct {
	Data []byte
}

// isSource implements the Source interface for BufferSource.
func (BufferSource) isSource() {}

// StreamSource is a pull-based sequence of byte chunks, read to exhaustion
// and aggregated in emission order during acquisition.
type StreamSource struct {
	Stream ChunkStream
}

// isSource implements the Source interface for StreamSource.
func (StreamSource) isSource() {}

// NewFilePathSource constructs a FilePathSource for a local path.
func NewFilePathSource(path string) FilePathSource { return FilePathSource{Path: path} }

// NewURLSource constructs a URLSource from a raw URL string. The string is
// not validated here; invalid URLs surface as acquisition failures.
func NewURLSource(raw string) URLSource { return URLSource{URL: raw} }

// NewFileHandleSource constructs a FileHandleSource. An empty mimeType is
// filled in by detection at acquisition time.
func NewFileHandleSource(name, mimeType string, data []byte) FileHandleSource {
	return FileHandleSource{Name: name, MimeType: mimeType, Data: data}
}

// NewBufferSource constructs a BufferSource around data. The buffer is not
// copied; callers must not mutate it while a conversion is in flight.
func NewBufferSource(data []byte) BufferSource { return BufferSource{Data: data} }

// NewStreamSource constructs a StreamSource around a ChunkStream.
func NewStreamSource(s ChunkStream) StreamSource { return StreamSource{Stream: s} }

// ResolveSource classifies an arbitrary value into exactly one Source
// variant. This is the compatibility probe for callers holding loosely typed
// inputs; code that can name its input kind should construct the variant
// directly. Classification order:
//
//  1. string: URL-parse probe. Absolute URLs (and data: URLs) become
//     URLSource; other strings become FilePathSource in the server
//     environment and fail in the browser environment.
//  2. []byte: BufferSource.
//  3. an existing Source: passed through unchanged.
//  4. ChunkStream: StreamSource. A plain io.Reader is adapted into one.
//  5. anything else: ErrInvalidSource.
func ResolveSource(v any, env Environment) (Source, error) {
	switch s := v.(type) {
	case string:
		return ResolveString(s, env)
	case []byte:
		return BufferSource{Data: s}, nil
	case Source:
		return s, nil
	case ChunkStream:
		return StreamSource{Stream: s}, nil
	case io.Reader:
		return StreamSource{Stream: NewReaderStream(s, 0)}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidSource, v)
	}
}

// ResolveString classifies a bare string: absolute URLs (scheme and host, or
// a data: URL) become URLSource; anything else is a file path in the server
// environment and an error in the browser environment, where bare non-URL
// strings are not supported.
func ResolveString(raw string, env Environment) (Source, error) {
	if isAbsoluteURL(raw) {
		return URLSource{URL: raw}, nil
	}
	if env.Effective() == EnvironmentBrowser {
		return nil, fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidSource, raw)
	}
	return FilePathSource{Path: raw}, nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme == "data" {
		return true
	}
	return u.Scheme != "" && u.Host != ""
}
