package core

import "runtime"

// Environment identifies the execution context a conversion runs in. It
// decides which codec path is used and which source kinds are acceptable:
// server environments use the native codec packages and may read file paths,
// browser environments (js/wasm builds) use the portable codec path and
// reject path-based sources.
type Environment int

const (
	// EnvironmentAuto defers to DetectEnvironment at the point of use. It is
	// the zero value, so an unconfigured converter always picks the
	// platform-appropriate environment, freshly per call.
	EnvironmentAuto Environment = iota
	// EnvironmentServer selects native byte-buffer primitives and file
	// system access.
	EnvironmentServer
	// EnvironmentBrowser selects the portable codec path and artifact
	// outputs; file paths are not accepted as sources.
	EnvironmentBrowser
)

// String returns the lowercase name of the environment.
func (e Environment) String() string {
	switch e {
	case EnvironmentAuto:
		return "auto"
	case EnvironmentServer:
		return "server"
	case EnvironmentBrowser:
		return "browser"
	default:
		return "unknown"
	}
}

// Effective resolves EnvironmentAuto to the detected platform environment.
// Concrete values pass through unchanged.
func (e Environment) Effective() Environment {
	if e == EnvironmentAuto {
		return DetectEnvironment()
	}
	return e
}

// DetectEnvironment classifies the running platform: browser iff this is a
// js/wasm build, server otherwise. The probe is evaluated fresh on every
// call; nothing is cached.
func DetectEnvironment() Environment {
	if runtime.GOOS == "js" && runtime.GOARCH == "wasm" {
		return EnvironmentBrowser
	}
	return EnvironmentServer
}
