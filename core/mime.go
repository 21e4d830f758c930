package core

import (
	"mime"
	"net/http"
	"path/filepath"
)

// DetectMimeType resolves a media type for a named payload. The file
// extension is consulted first; when it yields nothing the first bytes of
// data are sniffed. Detection never fails: unrecognizable content reports
// application/octet-stream.
func DetectMimeType(name string, data []byte) string {
	if ext := filepath.Ext(name); ext != "" {
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
	}
	if len(data) > 0 {
		// DetectContentType reads at most 512 bytes and always returns a
		// valid MIME type, falling back to application/octet-stream itself.
		return http.DetectContentType(data)
	}
	return "application/octet-stream"
}
