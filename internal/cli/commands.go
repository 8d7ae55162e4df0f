package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/keymint/keymint/internal/errors"
)

// Command-specific flags
var (
	initUserFlag   string
	initSystemFlag string
	initForce      bool
	doctorJSON     bool
	doctorFix      bool
)

// initCmd creates a new .keymint.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .keymint.yaml configuration",
	Long: `Initialize a keymint configuration file in the current directory.

Walks through the identifier defaults and generation settings with
interactive prompts, then writes .keymint.yaml.

Examples:
  keymint init
  keymint init --user alice@example.com
  keymint init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initUserFlag, initSystemFlag, initForce)
	},
}

// doctorCmd diagnoses environment and configuration issues
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose environment and config issues",
	Long: `Run diagnostic checks over everything key generation depends on.

Checks:
  - ssh-keygen availability and OpenSSH version
  - hostname and entropy sources behind the identifier defaults
  - output directory writability
  - configuration file validity
  - minted keys referenced from ~/.ssh/config

Examples:
  keymint doctor
  keymint doctor --json
  keymint doctor --fix`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

// inspectCmd decodes minted key file names
var inspectCmd = &cobra.Command{
	Use:   "inspect <key-file>...",
	Short: "Decode minted key file names",
	Long: `Break minted key file names back into their identifier fields.

Arguments can be bare names or paths; a trailing .pub is ignored for
decoding. When an argument is a readable public key file, the key type,
SHA256 fingerprint, and embedded comment are shown as well.

Examples:
  keymint inspect 'alice@example.com=demo.example.com=8af247255f409533f43c14cae2c07b97=passphrase=id_rsa'
  keymint inspect ~/.ssh/*.pub`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspectCommand(os.Stdout, args)
	},
}

// zidCmd mints unique identifiers without generating keys
var zidCmd = &cobra.Command{
	Use:   "zid [count]",
	Short: "Mint unique identifiers",
	Long: `Mint one or more ZIDs: 32 lowercase hex characters from 16 random
bytes, the same identifiers the generate workflow uses for the unique
slot.

Examples:
  keymint zid
  keymint zid 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return zidCommand(os.Stdout, args)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for keymint.

Examples:
  # Bash
  keymint completion bash > /etc/bash_completion.d/keymint

  # Zsh
  keymint completion zsh > "${fpath[1]}/_keymint"

  # Fish
  keymint completion fish > ~/.config/fish/completions/keymint.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrInput,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// init command flags
	initCmd.Flags().StringVar(&initUserFlag, "user", "", "pre-specify the default user identifier")
	initCmd.Flags().StringVar(&initSystemFlag, "system", "", "pre-specify the default system identifier")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// doctor command flags
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")

	// Register all commands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(zidCmd)
	rootCmd.AddCommand(completionCmd)
}
