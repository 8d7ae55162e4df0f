package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/keymint/keymint/internal/config"
	"github.com/keymint/keymint/internal/errors"
	"github.com/keymint/keymint/internal/identity"
	"github.com/keymint/keymint/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	User           string // pre-specified default user identifier
	System         string // pre-specified default system identifier
	Algorithm      string // pre-specified key algorithm
	OutDir         string // pre-specified output directory
	Overwrite      bool   // overwrite existing config without asking
	NonInteractive bool   // skip prompts, use provided values and defaults
}

// Init creates a new .keymint.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	user := opts.User
	system := opts.System
	algorithm := opts.Algorithm
	if algorithm == "" {
		algorithm = cfg.Algorithm
	}
	outDir := opts.OutDir

	if !opts.NonInteractive {
		hostname, _ := os.Hostname()

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Default user identifier").
					Description("Pre-fills the user slot when keymint runs without arguments").
					Placeholder(identity.DefaultUserIdentifier).
					Value(&user),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Default system identifier").
					Description("Leave empty to use the hostname ("+hostname+")").
					Placeholder(hostname).
					Value(&system),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Key algorithm").
					Options(
						huh.NewOption("rsa (4096 bits)", "rsa"),
						huh.NewOption("ed25519", "ed25519"),
						huh.NewOption("ecdsa", "ecdsa"),
					).
					Value(&algorithm),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Output directory").
					Description("Where minted key files are written (supports ~ and ${HOME})").
					Placeholder(".").
					Value(&outDir).
					Validate(func(s string) error {
						if strings.ContainsAny(s, "\n\t") {
							return fmt.Errorf("directory cannot contain whitespace control characters")
						}
						return nil
					}),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility, or pass --user and --force")
		}
	}

	// Build config
	cfg.Defaults.User = user
	cfg.Defaults.System = system
	cfg.Algorithm = algorithm
	if algorithm != "rsa" {
		// The default 4096 only applies to rsa
		cfg.Bits = 0
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}

	// Marshal to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	// Add a header comment
	header := `# Keymint configuration
# Run 'keymint' to mint a passphrase pair and an automation pair
# Run 'keymint doctor' to verify the environment

`
	content := header + string(data)

	// Write config file
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  keymint          - Mint both key pairs")
	fmt.Println("  keymint doctor   - Check the environment")
	fmt.Println("  keymint zid      - Mint a unique identifier")

	return nil
}

// initCommand is the implementation called by the cobra command. CI runs
// never see a terminal, so batch environments skip the form.
func initCommand(user, system string, force bool) error {
	return Init(InitOptions{
		User:           user,
		System:         system,
		Overwrite:      force,
		NonInteractive: batchMode(false),
	})
}
