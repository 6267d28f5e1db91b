// Package config loads command configuration from the environment.
//
// Command config structs declare `env` tags under the FLUX_ prefix; flag
// overrides layer on top of the parsed values in internal/platform/cmd.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from environment variables according to its env
// struct tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
