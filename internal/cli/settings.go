package cli

import (
	"github.com/keymint/keymint/internal/config"
)

// Settings are the effective generation settings after merging flag values
// over the loaded configuration.
type Settings struct {
	OutDir    string
	Algorithm string
	Bits      int
	Tool      string
}

// resolveSettings merges flags over config values. A set flag wins; zero
// values fall through to the config, which carries the built-in defaults
// when no file was found.
func resolveSettings(opts GenerateOptions, cfg *config.Config) Settings {
	s := Settings{
		OutDir:    cfg.OutDir,
		Algorithm: cfg.Algorithm,
		Bits:      cfg.Bits,
		Tool:      cfg.Tool,
	}

	if opts.OutDir != "" {
		s.OutDir = config.ExpandOutDir(opts.OutDir)
	}

	if opts.Algorithm != "" {
		s.Algorithm = opts.Algorithm
		if opts.Algorithm != cfg.Algorithm {
			// The configured key size belongs to the configured algorithm;
			// switching algorithms on the command line resets it.
			s.Bits = 0
		}
	}

	if opts.Bits > 0 {
		s.Bits = opts.Bits
	}

	if s.Algorithm == "ed25519" {
		// ed25519 keys have a fixed size; never forward -b.
		s.Bits = 0
	}

	return s
}
