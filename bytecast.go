// Package bytecast provides a high-level façade over the conversion layer and
// service abstractions (artifact stores & logging) for turning binary content
// into base64/hex text and back. Most applications interact with this package
// by:
//  1. Creating a ByteCast via New() (optionally overriding default in-memory services)
//  2. Encoding any supported source (path, URL, handle, buffer, stream) to text
//  3. Reconstructing bytes, files or named artifacts from previously encoded text
//
// The façade delegates conversion mechanics to convert.Converter while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a durable
// artifact store, a tuned HTTP client and a structured logger.
//
// Locale-aware formatting of numbers, currencies, dates and phone numbers
// lives in the sibling localize package and has no dependency on this façade.
package bytecast

import (
	"context"
	"net/http"

	"github.com/hupe1980/bytecast/artifact"
	"github.com/hupe1980/bytecast/codec"
	"github.com/hupe1980/bytecast/convert"
	"github.com/hupe1980/bytecast/core"
	"github.com/hupe1980/bytecast/logging"
)

// Options configures the ByteCast instance.
type Options struct {
	// Converter configuration (environment, fetch caps, chunking)
	ConverterConfig convert.Config

	// HTTPClient issues the single GET request for URL sources
	// (defaults to http.DefaultClient if nil)
	HTTPClient *http.Client

	// ArtifactStore persists reconstructed artifacts
	// (defaults to an in-memory implementation if not provided)
	ArtifactStore core.ArtifactStore

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// ByteCast is the high-level façade aggregating the converter and services.
type ByteCast struct {
	opts  Options
	conv  *convert.Converter
	store core.ArtifactStore
}

// New creates a new ByteCast instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *ByteCast {
	opts := Options{
		ConverterConfig: convert.DefaultConfig,
		ArtifactStore:   artifact.NewInMemoryStore(),
		Logger:          logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	conv := convert.New(func(o *convert.Options) {
		o.Config = opts.ConverterConfig
		o.HTTPClient = opts.HTTPClient
		o.Logger = opts.Logger
	})

	return &ByteCast{opts: opts, conv: conv, store: opts.ArtifactStore}
}

// Converter exposes the underlying converter for callers that need the full
// strict API.
func (b *ByteCast) Converter() *convert.Converter { return b.conv }

// EncodeBase64 encodes the bytes behind any supported source as base64.
func (b *ByteCast) EncodeBase64(ctx context.Context, src any) (string, error) {
	return b.conv.EncodeBase64(ctx, src)
}

// EncodeHex encodes the bytes behind any supported source as lowercase hex.
func (b *ByteCast) EncodeHex(ctx context.Context, src any) (string, error) {
	return b.conv.EncodeHex(ctx, src)
}

// ToBase64 is the loose forward adapter: failures collapse to "".
func (b *ByteCast) ToBase64(ctx context.Context, src any) string {
	return b.conv.ToBase64(ctx, src)
}

// ToHex is the loose forward adapter for hex.
func (b *ByteCast) ToHex(ctx context.Context, src any) string {
	return b.conv.ToHex(ctx, src)
}

// DecodeBase64 maps base64 text back to raw bytes.
func (b *ByteCast) DecodeBase64(ctx context.Context, text string) ([]byte, error) {
	return b.conv.DecodeBase64(ctx, text)
}

// DecodeHex maps hex text back to raw bytes.
func (b *ByteCast) DecodeHex(ctx context.Context, text string) ([]byte, error) {
	return b.conv.DecodeHex(ctx, text)
}

// DecodeToFile decodes text and writes the bytes to destPath, propagating
// decode and write failures.
func (b *ByteCast) DecodeToFile(ctx context.Context, text string, enc codec.Encoding, destPath string) error {
	return b.conv.DecodeToFile(ctx, text, enc, destPath)
}

// DecodeToArtifact decodes text into a named artifact without persisting it.
func (b *ByteCast) DecodeToArtifact(ctx context.Context, text string, enc codec.Encoding, name, mimeType string) (*core.Artifact, error) {
	return b.conv.DecodeToArtifact(ctx, text, enc, name, mimeType)
}

// DecodeAndStore decodes text into a named artifact and persists it in the
// configured store under namespace. The artifact is returned as stored.
func (b *ByteCast) DecodeAndStore(ctx context.Context, text string, enc codec.Encoding, namespace, name, mimeType string) (*core.Artifact, error) {
	art, err := b.conv.DecodeToArtifact(ctx, text, enc, name, mimeType)
	if err != nil {
		return nil, err
	}
	if err := b.store.Save(namespace, art); err != nil {
		return nil, err
	}
	return art, nil
}

// SaveArtifact persists an artifact in the configured store.
func (b *ByteCast) SaveArtifact(namespace string, art *core.Artifact) error {
	return b.store.Save(namespace, art)
}

// LoadArtifact retrieves an artifact from the configured store.
func (b *ByteCast) LoadArtifact(namespace, name string) (*core.Artifact, error) {
	return b.store.Get(namespace, name)
}

// ListArtifacts returns the artifact names stored under namespace.
func (b *ByteCast) ListArtifacts(namespace string) ([]string, error) {
	return b.store.List(namespace)
}

// DeleteArtifact removes an artifact from the configured store.
func (b *ByteCast) DeleteArtifact(namespace, name string) error {
	return b.store.Delete(namespace, name)
}
