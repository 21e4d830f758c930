package convert

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/hupe1980/bytecast/codec"
	"github.com/hupe1980/bytecast/core"
	"github.com/hupe1980/bytecast/logging"
)

// Config defines tuning parameters for the Converter's operational behavior.
//
// This configuration focuses on the behavioral aspects every deployment may
// need to adjust:
//   - Environment: which codec path and acquisition primitives are active
//   - Fetching: how large a URL response body may grow
//   - Streaming: the window size used when adapting plain readers
//
// Additional concerns such as transport tuning and logging are configured via
// functional options rather than expanding this struct.
type Config struct {
	// Environment selects the execution context. EnvironmentAuto (the zero
	// value) detects the platform freshly on every operation, so one binary
	// serves native and js/wasm builds without reconfiguration.
	Environment core.Environment

	// MaxFetchBytes caps the size of a URL response body. Responses larger
	// than the cap fail the acquisition instead of truncating. Set to 0 for
	// unlimited.
	MaxFetchBytes int64

	// ChunkSize sets the window size used when adapting a plain io.Reader
	// into a chunk stream. Defaults to core.DefaultChunkSize when zero.
	ChunkSize int
}

// DefaultConfig provides production-ready default configuration values.
//
// Configuration values:
//   - Environment: auto-detected per operation
//   - MaxFetchBytes: 0 (unlimited; callers fetching untrusted URLs should cap)
//   - ChunkSize: core.DefaultChunkSize
var DefaultConfig = Config{
	Environment:   core.EnvironmentAuto,
	MaxFetchBytes: 0,
	ChunkSize:     core.DefaultChunkSize,
}

// Options configures a Converter instance using the functional options
// pattern.
//
// Example:
//
//	conv := convert.New(func(o *convert.Options) {
//	    o.Config.MaxFetchBytes = 32 << 20
//	    o.Logger = myLogger
//	})
type Options struct {
	// Config contains operational parameters for conversion behavior.
	// Defaults to DefaultConfig if not specified.
	Config Config

	// HTTPClient issues the single GET request for URL sources. The
	// converter never retries; timeout and redirect policy belong to the
	// client. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger provides structured logging for debugging and monitoring.
	// Defaults to NoOp logger if nil to ensure no logging dependencies.
	Logger logging.Logger
}

// Converter normalizes polymorphic sources into bytes and maps them to and
// from base64/hex text. Immutable after construction and safe for concurrent
// use; each operation keeps its accumulator local.
type Converter struct {
	config     Config
	httpClient *http.Client
	logger     logging.Logger
}

// New creates a Converter with sensible defaults and optional configuration.
//
// Defaults:
//   - Config: DefaultConfig (auto environment, unlimited fetch)
//   - HTTPClient: http.DefaultClient
//   - Logger: no-op logger that discards all messages
func New(optFns ...func(o *Options)) *Converter {
	opts := Options{
		Config:     DefaultConfig,
		HTTPClient: http.DefaultClient,
		Logger:     logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Converter{
		config:     opts.Config,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
	}
}

// Encode resolves src into one of the five source variants, acquires its
// bytes and encodes them as enc text. src may be a core.Source, a string
// (URL or, on servers, a file path), a []byte, a core.ChunkStream or a plain
// io.Reader. All failures return distinguishable errors; see ToBase64 and
// ToHex for the loose contract.
func (c *Converter) Encode(ctx context.Context, src any, enc codec.Encoding) (string, error) {
	conversionID := core.NewID()
	env := c.config.Environment.Effective()

	source, err := core.ResolveSource(c.adaptReader(src), env)
	if err != nil {
		return "", err
	}

	start := time.Now()
	data, err := c.acquire(ctx, source, env)
	if err != nil {
		return "", err
	}

	text := codec.For(enc, env).EncodeToString(data)
	c.logger.Debug("Forward conversion completed",
		"conversion_id", conversionID,
		"encoding", enc.String(),
		"environment", env.String(),
		"byte_count", len(data),
		"duration", time.Since(start))
	return text, nil
}

// adaptReader wraps a plain io.Reader into a chunk stream sized by
// Config.ChunkSize. Values claimed by any other resolution rule (string,
// []byte, Source, ChunkStream) pass through untouched.
func (c *Converter) adaptReader(src any) any {
	switch src.(type) {
	case string, []byte, core.Source, core.ChunkStream:
		return src
	}
	if r, ok := src.(io.Reader); ok {
		return core.NewStreamSource(core.NewReaderStream(r, c.config.ChunkSize))
	}
	return src
}

// EncodeBase64 encodes the bytes behind src as standard padded base64.
func (c *Converter) EncodeBase64(ctx context.Context, src any) (string, error) {
	return c.Encode(ctx, src, codec.Base64)
}

// EncodeHex encodes the bytes behind src as lowercase hex.
func (c *Converter) EncodeHex(ctx context.Context, src any) (string, error) {
	return c.Encode(ctx, src, codec.Hex)
}

// Decode maps enc text back to the raw byte sequence it encodes. Malformed
// input fails with an error wrapping core.ErrMalformedText; nothing is
// silently truncated.
func (c *Converter) Decode(ctx context.Context, text string, enc codec.Encoding) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := c.config.Environment.Effective()
	data, err := codec.For(enc, env).DecodeString(text)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Reverse conversion completed",
		"encoding", enc.String(),
		"environment", env.String(),
		"byte_count", len(data))
	return data, nil
}

// DecodeBase64 maps standard padded base64 text back to raw bytes.
func (c *Converter) DecodeBase64(ctx context.Context, text string) ([]byte, error) {
	return c.Decode(ctx, text, codec.Base64)
}

// DecodeHex maps hex text back to raw bytes.
func (c *Converter) DecodeHex(ctx context.Context, text string) ([]byte, error) {
	return c.Decode(ctx, text, codec.Hex)
}

// ToBase64 is the loose forward adapter: any failure (unsupported source,
// missing file, network error, stream fault) collapses to the empty string
// after being logged. Callers that must distinguish failure kinds should use
// Encode or EncodeBase64 instead.
func (c *Converter) ToBase64(ctx context.Context, src any) string {
	text, err := c.Encode(ctx, src, codec.Base64)
	if err != nil {
		c.logger.Warn("Forward conversion swallowed failure", "encoding", "base64", "error", err)
		return ""
	}
	return text
}

// ToHex is the loose forward adapter for hex; failure semantics match
// ToBase64.
func (c *Converter) ToHex(ctx context.Context, src any) string {
	text, err := c.Encode(ctx, src, codec.Hex)
	if err != nil {
		c.logger.Warn("Forward conversion swallowed failure", "encoding", "hex", "error", err)
		return ""
	}
	return text
}
