package artifact

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hupe1980/bytecast/core"
)

// FSStore is a file-system backed ArtifactStore. Each artifact is persisted
// as one JSON document at <root>/<namespace>/<name>.json with the payload
// base64-encoded by the JSON codec itself. Writes go through a temp file and
// rename so readers never observe a partially written artifact. Namespace and
// name are path-escaped, so arbitrary strings are safe as keys.
//
// Suited to single-host deployments where artifacts must survive a process
// restart. Concurrent use within one process is safe; coordination between
// processes is limited to what the atomic rename provides.
type FSStore struct {
	root string
	mu   sync.RWMutex
}

// NewFSStore creates the root directory if needed and returns a store over it.
func NewFSStore(root string) (*FSStore, error) {
	if root == "" {
		return nil, fmt.Errorf("root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact root: %w", err)
	}
	return &FSStore{root: root}, nil
}

// Save persists the artifact under the namespace, replacing any previous
// artifact with the same name.
func (s *FSStore) Save(namespace string, art *core.Artifact) error {
	if art == nil {
		return fmt.Errorf("artifact is nil")
	}
	if art.Name == "" {
		return fmt.Errorf("artifact name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.namespaceDir(namespace)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create namespace dir: %w", err)
	}
	data, err := json.Marshal(art)
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	path := s.artifactPath(namespace, art.Name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Get loads the artifact stored under (namespace, name) or returns
// ErrNotFound.
func (s *FSStore) Get(namespace, name string) (*core.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.artifactPath(namespace, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var art core.Artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("unmarshal artifact: %w", err)
	}
	return &art, nil
}

// List returns the names of all artifacts stored in the namespace. An unknown
// namespace lists empty, mirroring InMemoryStore.
func (s *FSStore) List(namespace string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.namespaceDir(namespace))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read namespace dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		escaped := strings.TrimSuffix(entry.Name(), ".json")
		name, err := url.PathUnescape(escaped)
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Delete removes the artifact stored under (namespace, name) or returns
// ErrNotFound.
func (s *FSStore) Delete(namespace, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.artifactPath(namespace, name))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete artifact: %w", err)
	}
	return nil
}

func (s *FSStore) namespaceDir(namespace string) string {
	return filepath.Join(s.root, url.PathEscape(namespace))
}

func (s *FSStore) artifactPath(namespace, name string) string {
	return filepath.Join(s.namespaceDir(namespace), url.PathEscape(name)+".json")
}
