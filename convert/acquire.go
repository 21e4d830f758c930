package convert

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hupe1980/bytecast/core"
)

// acquire normalizes a resolved Source into one contiguous byte slice.
// Buffer sources pass through without copying; handle sources are copied so
// callers can reuse their slices. Every failure carries the source kind via
// *core.AcquisitionError.
func (c *Converter) acquire(ctx context.Context, src core.Source, env core.Environment) ([]byte, error) {
	start := time.Now()
	switch s := src.(type) {
	case core.FilePathSource:
		data, err := c.acquireFile(ctx, s, env)
		c.logAcquisition("file", len(data), time.Since(start), err)
		return data, err
	case core.URLSource:
		data, err := c.acquireURL(ctx, s)
		c.logAcquisition("url", len(data), time.Since(start), err)
		return data, err
	case core.FileHandleSource:
		cp := make([]byte, len(s.Data))
		copy(cp, s.Data)
		return cp, nil
	case core.BufferSource:
		return s.Data, nil
	case core.StreamSource:
		data, err := c.acquireStream(ctx, s.Stream)
		c.logAcquisition("stream", len(data), time.Since(start), err)
		return data, err
	default:
		return nil, fmt.Errorf("%w: %T", core.ErrInvalidSource, src)
	}
}

func (c *Converter) logAcquisition(kind string, byteCount int, dur time.Duration, err error) {
	if err != nil {
		c.logger.Debug("Acquisition failed", "source_kind", kind, "duration", dur, "error", err)
		return
	}
	c.logger.Debug("Acquisition completed", "source_kind", kind, "byte_count", byteCount, "duration", dur)
}

// acquireFile reads the whole file at once. Browser environments have no
// path-based file access, so the acquisition fails there regardless of path.
func (c *Converter) acquireFile(ctx context.Context, src core.FilePathSource, env core.Environment) ([]byte, error) {
	if env == core.EnvironmentBrowser {
		return nil, &core.AcquisitionError{Kind: "file", Err: fmt.Errorf("file paths are not readable in the browser environment")}
	}
	if err := ctx.Err(); err != nil {
		return nil, &core.AcquisitionError{Kind: "file", Err: err}
	}
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, &core.AcquisitionError{Kind: "file", Err: err}
	}
	return data, nil
}

// acquireURL issues one GET request and buffers the full response body.
// data: URLs are decoded inline without touching the network. A configured
// MaxFetchBytes fails oversized responses instead of truncating them.
func (c *Converter) acquireURL(ctx context.Context, src core.URLSource) ([]byte, error) {
	if strings.HasPrefix(src.URL, "data:") {
		data, err := decodeDataURL(src.URL)
		if err != nil {
			return nil, &core.AcquisitionError{Kind: "url", Err: err}
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, &core.AcquisitionError{Kind: "url", Err: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &core.AcquisitionError{Kind: "url", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &core.AcquisitionError{Kind: "url", Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body := io.Reader(resp.Body)
	if c.config.MaxFetchBytes > 0 {
		// Read one byte past the cap so oversize is detectable.
		body = io.LimitReader(resp.Body, c.config.MaxFetchBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &core.AcquisitionError{Kind: "url", Err: err}
	}
	if c.config.MaxFetchBytes > 0 && int64(len(data)) > c.config.MaxFetchBytes {
		return nil, &core.AcquisitionError{Kind: "url", Err: fmt.Errorf("response exceeds %d bytes", c.config.MaxFetchBytes)}
	}
	return data, nil
}

// acquireStream drains the stream to exhaustion and reassembles the chunks
// in emission order: collect chunks while tracking the total, allocate the
// output once, then copy each chunk at its offset. Pulls are strictly
// sequential and partial consumption is not a supported mode. Empty chunks
// are tolerated and skipped.
func (c *Converter) acquireStream(ctx context.Context, stream core.ChunkStream) ([]byte, error) {
	var (
		chunks [][]byte
		total  int
	)
	for {
		chunk, err := stream.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &core.AcquisitionError{Kind: "stream", Err: err}
		}
		if len(chunk) == 0 {
			continue
		}
		chunks = append(chunks, chunk)
		total += len(chunk)
	}

	out := make([]byte, total)
	offset := 0
	for _, chunk := range chunks {
		offset += copy(out[offset:], chunk)
	}
	return out, nil
}

// decodeDataURL extracts the payload of an RFC 2397 data: URL. Payloads
// marked ;base64 are base64-decoded; otherwise the payload is
// percent-decoded text.
func decodeDataURL(raw string) ([]byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(raw, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("data url has no comma separator")
	}
	if strings.HasSuffix(meta, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("data url payload: %w", err)
		}
		return data, nil
	}
	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("data url payload: %w", err)
	}
	return []byte(decoded), nil
}
