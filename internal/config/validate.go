package config

import (
	"fmt"

	"github.com/keymint/keymint/internal/errors"
)

// ValidAlgorithms are the key types keymint knows how to name and pass to
// the external tool.
var ValidAlgorithms = map[string]bool{
	"rsa":     true,
	"ed25519": true,
	"ecdsa":   true,
}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but keymint only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest keymint release")
	}

	if err := validateAlgorithm(cfg.Algorithm, cfg.Bits); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'algorithm' and 'bits' settings in your .keymint.yaml.")
	}

	if cfg.Tool == "" {
		return errors.New(errors.ErrConfig,
			"The 'tool' setting is empty",
			"Remove the setting to use ssh-keygen, or name the binary to run.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .keymint.yaml.")
	}

	return nil
}

// validateAlgorithm checks the key type and size settings.
func validateAlgorithm(algorithm string, bits int) error {
	if algorithm != "" && !ValidAlgorithms[algorithm] {
		return fmt.Errorf("algorithm '%s' isn't valid - use 'rsa', 'ed25519', or 'ecdsa'", algorithm)
	}

	if bits < 0 {
		return fmt.Errorf("bits can't be negative - that doesn't make sense")
	}

	if algorithm == "rsa" && bits > 0 && bits < 1024 {
		return fmt.Errorf("bits=%d is too small for rsa - use at least 1024 (4096 recommended)", bits)
	}

	return nil
}

// validateOutput checks output configuration.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}

	return nil
}
