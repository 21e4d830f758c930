// Package testutil contains helper builders and utilities used across tests
// to reduce boilerplate when constructing conversion inputs (temp files,
// byte-serving HTTP servers, scripted chunk streams). These helpers are
// intentionally minimal and avoid adding third-party dependencies. They are
// not intended for production usage.
package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/bytecast/core"
)

// TempFile writes data to a fresh file under the test's temp directory and
// returns its path. The file is removed with the test's cleanup.
func TempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

// ServeBytes starts an HTTP test server that answers every request with
// data. The server is shut down automatically when the test ends.
func ServeBytes(t *testing.T, data []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// StreamOf returns a ChunkStream that yields exactly the given chunks in
// order, then io.EOF. Empty chunks are yielded as-is so callers can exercise
// skip behavior.
func StreamOf(chunks ...[]byte) core.ChunkStream {
	return &scriptedStream{chunks: chunks}
}

type scriptedStream struct {
	chunks [][]byte
	pos    int
}

func (s *scriptedStream) Next(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pos >= len(s.chunks) {
		return nil, io.EOF
	}
	chunk := s.chunks[s.pos]
	s.pos++
	return chunk, nil
}
