package core

// Artifact is a named binary payload, the browser-environment analogue of a
// raw byte buffer. Reverse conversions in the browser environment produce
// Artifacts; stores persist and retrieve them by (namespace, name).
type Artifact struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType,omitempty"`
	Data     []byte `json:"data"`
}

// NewArtifact creates an Artifact. An empty mimeType is filled in by content
// detection over the name and data.
func NewArtifact(name, mimeType string, data []byte) *Artifact {
	if mimeType == "" {
		mimeType = DetectMimeType(name, data)
	}
	return &Artifact{Name: name, MimeType: mimeType, Data: data}
}

// ArtifactStore defines the interface for artifact persistence.
// Implementations should be thread-safe and scope artifacts by namespace.
// Short method names (Save/Get/List/Delete) mirror other store interfaces
// for consistency. Lookups for absent artifacts report a not-found error
// the concrete store package exposes as a sentinel.
type ArtifactStore interface {
	Save(namespace string, artifact *Artifact) error
	Get(namespace, name string) (*Artifact, error)
	List(namespace string) ([]string, error)
	Delete(namespace, name string) error
}
