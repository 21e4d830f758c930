package artifact

import (
	"fmt"
	"sync"

	"github.com/hupe1980/bytecast/core"
)

// InMemoryStore is a trivial in-process ArtifactStore implementation useful
// for tests, examples and single-process prototypes. It keeps all artifacts
// in a nested map guarded by an RWMutex. Payloads are copied on save and
// retrieval to avoid accidental external mutation of internal buffers.
//
// Layout: namespace -> name -> artifact
//
// This implementation is intentionally minimal; it does not enforce retention
// limits, size quotas, or eviction. For anything that must survive a process
// restart, prefer FSStore or a remote object store.
type InMemoryStore struct {
	mu        sync.RWMutex
	artifacts map[string]map[string]core.Artifact // namespace -> name -> artifact
}

// NewInMemoryStore returns an empty in-memory artifact store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{artifacts: make(map[string]map[string]core.Artifact)}
}

// Save stores (or overwrites) the artifact for the given namespace and its
// name. The payload is copied before storage.
func (a *InMemoryStore) Save(namespace string, art *core.Artifact) error {
	if art == nil {
		return fmt.Errorf("artifact is nil")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.artifacts[namespace]; !exists {
		a.artifacts[namespace] = make(map[string]core.Artifact)
	}
	cp := make([]byte, len(art.Data))
	copy(cp, art.Data)
	a.artifacts[namespace][art.Name] = core.Artifact{Name: art.Name, MimeType: art.MimeType, Data: cp}
	return nil
}

// Get returns a copy of the stored artifact or ErrNotFound.
func (a *InMemoryStore) Get(namespace, name string) (*core.Artifact, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	m, ok := a.artifacts[namespace]
	if !ok {
		return nil, ErrNotFound
	}
	art, ok := m[name]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(art.Data))
	copy(cp, art.Data)
	return &core.Artifact{Name: art.Name, MimeType: art.MimeType, Data: cp}, nil
}

// List returns the artifact names stored for the namespace. The slice is
// a snapshot and safe for caller mutation.
func (a *InMemoryStore) List(namespace string) ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	m, ok := a.artifacts[namespace]
	if !ok {
		return []string{}, nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names, nil
}

// Delete removes the artifact if present or returns ErrNotFound.
func (a *InMemoryStore) Delete(namespace, name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	m, ok := a.artifacts[namespace]
	if !ok {
		return ErrNotFound
	}
	if _, ok := m[name]; !ok {
		return ErrNotFound
	}
	delete(m, name)
	return nil
}
