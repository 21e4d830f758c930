package core

import (
	"context"
	"io"
)

// DefaultChunkSize is the chunk size used by stream adapters when the caller
// passes a non-positive size.
const DefaultChunkSize = 32 * 1024

// ChunkStream is a pull-based sequence of byte chunks. Next returns the next
// chunk, io.EOF once the stream is exhausted, or another error on failure.
// Implementations must honor ctx cancellation on blocking pulls. A returned
// chunk is owned by the caller; implementations must not reuse its backing
// array on subsequent pulls.
type ChunkStream interface {
	Next(ctx context.Context) ([]byte, error)
}

// readerStream adapts an io.Reader into a ChunkStream.
type readerStream struct {
	r         io.Reader
	chunkSize int
}

// NewReaderStream wraps r as a ChunkStream yielding chunks of up to
// chunkSize bytes. A non-positive chunkSize falls back to DefaultChunkSize.
func NewReaderStream(r io.Reader, chunkSize int) ChunkStream {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &readerStream{r: r, chunkSize: chunkSize}
}

// Next reads the next chunk from the underlying reader. Reads that return
// (0, nil) are retried, so callers never observe an empty non-terminal chunk.
// A read that yields data alongside io.EOF returns the data now; the EOF
// surfaces on the following pull. A fresh buffer is allocated per pull so
// callers may retain returned chunks.
func (s *readerStream) Next(ctx context.Context) ([]byte, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buf := make([]byte, s.chunkSize)
		n, err := s.r.Read(buf)
		if n > 0 {
			return buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// chunkedStream yields successive windows of a fixed byte slice.
type chunkedStream struct {
	data      []byte
	chunkSize int
	offset    int
}

// NewChunkedStream returns a ChunkStream that yields data in windows of
// chunkSize bytes (the final window may be shorter). A non-positive
// chunkSize falls back to DefaultChunkSize. The data slice is not copied.
func NewChunkedStream(data []byte, chunkSize int) ChunkStream {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &chunkedStream{data: data, chunkSize: chunkSize}
}

// Next returns the next window, or io.EOF when all data has been yielded.
func (s *chunkedStream) Next(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.offset >= len(s.data) {
		return nil, io.EOF
	}
	end := s.offset + s.chunkSize
	if end > len(s.data) {
		end = len(s.data)
	}
	chunk := s.data[s.offset:end]
	s.offset = end
	return chunk, nil
}
