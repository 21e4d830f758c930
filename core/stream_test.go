package core

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func collect(t *testing.T, s ChunkStream) [][]byte {
	t.Helper()
	var chunks [][]byte
	for {
		chunk, err := s.Next(context.Background())
		if err == io.EOF {
			return chunks
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		chunks = append(chunks, chunk)
	}
}

func TestChunkedStream_Windows(t *testing.T) {
	chunks := collect(t, NewChunkedStream([]byte("abcdefgh"), 3))
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	joined := bytes.Join(chunks, nil)
	if string(joined) != "abcdefgh" {
		t.Fatalf("reassembly = %q", joined)
	}
	if string(chunks[2]) != "gh" {
		t.Fatalf("final window should be short: %q", chunks[2])
	}
}

func TestChunkedStream_EmptyDataIsImmediateEOF(t *testing.T) {
	s := NewChunkedStream(nil, 4)
	if _, err := s.Next(context.Background()); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestChunkedStream_DefaultChunkSize(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, DefaultChunkSize+1)
	chunks := collect(t, NewChunkedStream(data, 0))
	if len(chunks) != 2 || len(chunks[0]) != DefaultChunkSize {
		t.Fatalf("expected default-size window then remainder, got %d chunks", len(chunks))
	}
}

func TestReaderStream_YieldsAllBytes(t *testing.T) {
	chunks := collect(t, NewReaderStream(strings.NewReader("stream me"), 4))
	if string(bytes.Join(chunks, nil)) != "stream me" {
		t.Fatalf("reassembly = %q", bytes.Join(chunks, nil))
	}
}

// iotest-style reader that interleaves (0, nil) reads before yielding data.
type stutteringReader struct {
	r       io.Reader
	stutter bool
}

func (s *stutteringReader) Read(p []byte) (int, error) {
	s.stutter = !s.stutter
	if s.stutter {
		return 0, nil
	}
	return s.r.Read(p)
}

func TestReaderStream_RetriesZeroByteReads(t *testing.T) {
	s := NewReaderStream(&stutteringReader{r: strings.NewReader("xy")}, 8)
	chunk, err := s.Next(context.Background())
	if err != nil || string(chunk) != "xy" {
		t.Fatalf("chunk = %q, %v", chunk, err)
	}
	if _, err := s.Next(context.Background()); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderStream_PropagatesReadErrors(t *testing.T) {
	boom := errors.New("boom")
	s := NewReaderStream(io.MultiReader(strings.NewReader("ok"), &failingReader{err: boom}), 8)
	if chunk, err := s.Next(context.Background()); err != nil || string(chunk) != "ok" {
		t.Fatalf("first pull = %q, %v", chunk, err)
	}
	if _, err := s.Next(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

type failingReader struct{ err error }

func (f *failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestStreams_HonorContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, s := range []ChunkStream{
		NewChunkedStream([]byte("abc"), 1),
		NewReaderStream(strings.NewReader("abc"), 1),
	} {
		if _, err := s.Next(ctx); !errors.Is(err, context.Canceled) {
			t.Fatalf("%T: expected context.Canceled, got %v", s, err)
		}
	}
}
