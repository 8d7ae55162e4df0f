package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .keymint.yaml configuration file.
type Config struct {
	Version   int            `yaml:"version" mapstructure:"version"`
	Defaults  DefaultsConfig `yaml:"defaults" mapstructure:"defaults"`
	Algorithm string         `yaml:"algorithm" mapstructure:"algorithm"`
	Bits      int            `yaml:"bits" mapstructure:"bits"`
	OutDir    string         `yaml:"out_dir" mapstructure:"out_dir"`
	Tool      string         `yaml:"tool" mapstructure:"tool"`
	Output    OutputConfig   `yaml:"output" mapstructure:"output"`
}

// DefaultsConfig overrides the computed identifier defaults.
type DefaultsConfig struct {
	// User replaces the built-in user identifier default when set.
	User string `yaml:"user" mapstructure:"user"`

	// System replaces the hostname default when set.
	System string `yaml:"system" mapstructure:"system"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:   CurrentConfigVersion,
		Algorithm: "rsa",
		Bits:      4096,
		OutDir:    ".",
		Tool:      "ssh-keygen",
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
