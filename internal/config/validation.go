// internal/config/validation.go - Configuration validation
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the structural configuration constraints declared on the
// Config struct tags. Credentials are deliberately not required here; only
// commands that talk to the API need them, and they check separately.
func Validate(config *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
