package core

import (
	"strings"
	"testing"
)

func TestDetectMimeType_ExtensionWins(t *testing.T) {
	got := DetectMimeType("photo.png", nil)
	if got != "image/png" {
		t.Fatalf("png extension = %q", got)
	}
	// Extension beats content sniffing even when the bytes disagree.
	got = DetectMimeType("notes.html", []byte{0x89, 'P', 'N', 'G'})
	if !strings.HasPrefix(got, "text/html") {
		t.Fatalf("html extension = %q", got)
	}
}

func TestDetectMimeType_SniffsContent(t *testing.T) {
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if got := DetectMimeType("nameless", pngMagic); got != "image/png" {
		t.Fatalf("png sniff = %q", got)
	}
	if got := DetectMimeType("", []byte("plain words here")); !strings.HasPrefix(got, "text/plain") {
		t.Fatalf("text sniff = %q", got)
	}
}

func TestDetectMimeType_FallsBackToOctetStream(t *testing.T) {
	if got := DetectMimeType("", nil); got != "application/octet-stream" {
		t.Fatalf("empty input = %q", got)
	}
}

func TestNewArtifact_FillsMimeType(t *testing.T) {
	a := NewArtifact("report.pdf", "", []byte("%PDF-1.7"))
	if a.MimeType != "application/pdf" {
		t.Fatalf("detected mime = %q", a.MimeType)
	}
	b := NewArtifact("report.pdf", "application/x-custom", nil)
	if b.MimeType != "application/x-custom" {
		t.Fatalf("explicit mime should win, got %q", b.MimeType)
	}
}

func TestNewID_Unique(t *testing.T) {
	a := NewID()
	b := NewID()
	if a == b || a == "" {
		t.Fatalf("expected distinct non-empty IDs, got %q and %q", a, b)
	}
}
