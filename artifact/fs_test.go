package artifact

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/bytecast/core"
)

var _ core.ArtifactStore = (*FSStore)(nil)

func newFSStore(t *testing.T) *FSStore {
	t.Helper()
	store, err := NewFSStore(filepath.Join(t.TempDir(), "artifacts"))
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	return store
}

func TestFSStore_SaveAndGet(t *testing.T) {
	store := newFSStore(t)
	in := core.NewArtifact("report.bin", "application/octet-stream", []byte{0x01, 0x02, 0x03})
	if err := store.Save("job-1", in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := store.Get("job-1", "report.bin")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Name != in.Name || out.MimeType != in.MimeType || string(out.Data) != string(in.Data) {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestFSStore_GetMissing(t *testing.T) {
	store := newFSStore(t)
	if _, err := store.Get("job-1", "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFSStore_ListAndDelete(t *testing.T) {
	store := newFSStore(t)
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := store.Save("ns", core.NewArtifact(name, "", []byte(name))); err != nil {
			t.Fatal(err)
		}
	}
	names, err := store.List("ns")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %v", names)
	}
	if err := store.Delete("ns", "a.txt"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete("ns", "a.txt"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
	names, _ = store.List("ns")
	if len(names) != 1 || names[0] != "b.txt" {
		t.Fatalf("expected [b.txt], got %v", names)
	}
}

func TestFSStore_ListUnknownNamespace(t *testing.T) {
	store := newFSStore(t)
	names, err := store.List("never-seen")
	if err != nil || len(names) != 0 {
		t.Fatalf("unknown namespace should list empty, got %v, %v", names, err)
	}
}

func TestFSStore_EscapesHostileNames(t *testing.T) {
	store := newFSStore(t)
	name := "../escape/attempt.bin"
	if err := store.Save("ns", core.NewArtifact(name, "", []byte("x"))); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := store.Get("ns", name)
	if err != nil || string(out.Data) != "x" {
		t.Fatalf("get escaped name: %v", err)
	}
	names, _ := store.List("ns")
	if len(names) != 1 || names[0] != name {
		t.Fatalf("list should report original name, got %v", names)
	}
	// nothing may be written outside the store root
	if _, err := os.Stat(filepath.Join(store.root, "..", "escape")); !os.IsNotExist(err) {
		t.Fatal("artifact escaped the store root")
	}
}

func TestFSStore_SurvivesReopen(t *testing.T) {
	root := filepath.Join(t.TempDir(), "artifacts")
	store, err := NewFSStore(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save("ns", core.NewArtifact("keep.bin", "", []byte("persisted"))); err != nil {
		t.Fatal(err)
	}
	reopened, err := NewFSStore(root)
	if err != nil {
		t.Fatal(err)
	}
	out, err := reopened.Get("ns", "keep.bin")
	if err != nil || string(out.Data) != "persisted" {
		t.Fatalf("reopen get: %v", err)
	}
}

func TestFSStore_RequiresName(t *testing.T) {
	store := newFSStore(t)
	if err := store.Save("ns", &core.Artifact{Data: []byte("x")}); err == nil {
		t.Fatal("expected error for empty name")
	}
	if err := store.Save("ns", nil); err == nil {
		t.Fatal("expected error for nil artifact")
	}
}
