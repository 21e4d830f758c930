package convert

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/hupe1980/bytecast/core"
)

// envOptions mirrors the BYTECAST_* environment variables.
type envOptions struct {
	Environment   string        `env:"BYTECAST_ENVIRONMENT" envDefault:"auto"`
	MaxFetchBytes int64         `env:"BYTECAST_MAX_FETCH_BYTES" envDefault:"0"`
	FetchTimeout  time.Duration `env:"BYTECAST_FETCH_TIMEOUT" envDefault:"0"`
}

// FromEnv reads converter configuration from BYTECAST_* environment
// variables and returns it as a functional option for New:
//
//	BYTECAST_ENVIRONMENT      auto | server | browser
//	BYTECAST_MAX_FETCH_BYTES  response body cap in bytes, 0 = unlimited
//	BYTECAST_FETCH_TIMEOUT    Go duration for the default HTTP client
//
// A set FetchTimeout replaces the HTTP client with one carrying that
// timeout; an explicitly provided client should therefore be applied after
// this option.
func FromEnv() (func(o *Options), error) {
	var eo envOptions
	if err := env.Parse(&eo); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	environment, err := ParseEnvironment(eo.Environment)
	if err != nil {
		return nil, err
	}
	return func(o *Options) {
		o.Config.Environment = environment
		o.Config.MaxFetchBytes = eo.MaxFetchBytes
		if eo.FetchTimeout > 0 {
			o.HTTPClient = &http.Client{Timeout: eo.FetchTimeout}
		}
	}, nil
}

// ParseEnvironment maps a textual environment name onto the Environment
// enum. The empty string means auto.
func ParseEnvironment(s string) (core.Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return core.EnvironmentAuto, nil
	case "server":
		return core.EnvironmentServer, nil
	case "browser":
		return core.EnvironmentBrowser, nil
	default:
		return core.EnvironmentAuto, fmt.Errorf("unknown environment %q", s)
	}
}
