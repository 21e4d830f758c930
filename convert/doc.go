// Package convert implements the binary source conversion layer of bytecast.
//
// The Converter is the central coordination point between polymorphic source
// ingestion, byte acquisition, and the byte-to-text codecs. It normalizes any
// of the five accepted source kinds into one contiguous byte sequence and maps
// it to base64 or hex text, and it reconstructs bytes, files and artifacts
// from previously encoded text.
//
// # Core Responsibilities
//
// Source Resolution:
//   - Five-way classification of loosely typed inputs (path, URL, handle,
//     buffer, stream) via core.ResolveSource
//   - Explicit constructors for callers that can name their input kind
//
// Byte Acquisition:
//   - Whole-file reads for path sources (server environment only)
//   - A single buffered GET request per URL source, with inline handling
//     of data: URLs and an optional response size cap
//   - Ordered aggregation of pull-based chunk streams with exact
//     emission-order reassembly
//
// Encoding and Reconstruction:
//   - Deterministic base64/hex text via the environment-selected codec path
//   - Reverse conversion to raw bytes, to a destination file, or to a named
//     artifact
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────┐
//	│                    Caller Layer                     │
//	├─────────────────────────────────────────────────────┤
//	│                 Converter Interface                 │
//	│  ┌──────────┐ ┌──────────┐ ┌─────────────────────┐  │
//	│  │  Encode  │ │  Decode  │ │ ToBase64 / ToHex    │  │
//	│  └──────────┘ └──────────┘ └─────────────────────┘  │
//	├─────────────────────────────────────────────────────┤
//	│                 Acquisition Layer                   │
//	│  ┌──────┐ ┌──────┐ ┌────────┐ ┌────────┐ ┌───────┐  │
//	│  │ file │ │ url  │ │ handle │ │ buffer │ │stream │  │
//	│  └──────┘ └──────┘ └────────┘ └────────┘ └───────┘  │
//	├─────────────────────────────────────────────────────┤
//	│                    Codec Layer                      │
//	│        native (server)   portable (browser)         │
//	└─────────────────────────────────────────────────────┘
//
// # Error Handling
//
// The strict operations (Encode, Decode, DecodeToFile, DecodeToArtifact)
// return distinguishable errors: core.ErrInvalidSource, *core.AcquisitionError,
// core.ErrMalformedText and core.ErrMissingName. The loose adapters (ToBase64,
// ToHex) collapse every failure to an empty string after logging it, matching
// callers that treat "could not convert" and "nothing to convert" alike.
// Reverse operations never swallow: a failed decode or file write always
// propagates so callers know whether persisted state was written.
//
// # Concurrency Model
//
// A Converter is immutable after construction and safe for concurrent use.
// Each operation works on its own local accumulator; stream pulls within one
// operation are strictly sequential, so chunk order is deterministic. There is
// no retry logic anywhere: every I/O failure is terminal for that call, and
// cancellation arrives only through the caller's context.
package convert
