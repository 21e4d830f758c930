package convert

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hupe1980/bytecast/codec"
	"github.com/hupe1980/bytecast/core"
)

// DecodeToFile decodes enc text and writes the bytes to destPath in one
// whole-file write, awaiting completion before returning. Unlike the forward
// direction, every failure here propagates: the caller needs to know whether
// persisted state was actually written. The destination directory must
// already exist.
func (c *Converter) DecodeToFile(ctx context.Context, text string, enc codec.Encoding, destPath string) error {
	start := time.Now()
	data, err := c.Decode(ctx, text, enc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(destPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	c.logger.Debug("Reconstruction written",
		"encoding", enc.String(),
		"dest_path", destPath,
		"byte_count", len(data),
		"duration", time.Since(start))
	return nil
}

// DecodeToArtifact decodes enc text and wraps the bytes in a named Artifact,
// the browser-environment output shape. The name is required and validated
// before any decode work happens; an empty mimeType is filled in by content
// detection. Failures propagate like every reverse operation.
func (c *Converter) DecodeToArtifact(ctx context.Context, text string, enc codec.Encoding, name, mimeType string) (*core.Artifact, error) {
	if name == "" {
		return nil, core.ErrMissingName
	}
	data, err := c.Decode(ctx, text, enc)
	if err != nil {
		return nil, err
	}
	art := core.NewArtifact(name, mimeType, data)
	c.logger.Debug("Reconstruction packaged",
		"encoding", enc.String(),
		"artifact_name", art.Name,
		"mime_type", art.MimeType,
		"byte_count", len(data))
	return art, nil
}
