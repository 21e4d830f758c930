// Package core provides the foundational domain types and contracts used by
// bytecast. It defines:
//
//   - Source (the closed union of accepted input kinds) and its constructors
//   - ChunkStream (pull-based byte chunk sequences) with reader and slice adapters
//   - Artifact (named binary payload) and the pluggable ArtifactStore contract
//   - Environment (server vs. browser execution context) and its detection probe
//   - The error taxonomy shared by both conversion directions
//
// The package intentionally keeps implementation concerns (codec paths, byte
// acquisition, persistence backends) out of scope, exposing small types and
// interfaces so entry points and backends can be substituted without touching
// calling code.
package core
