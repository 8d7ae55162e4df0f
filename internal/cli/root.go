package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keymint/keymint/internal/errors"
	"github.com/keymint/keymint/internal/ui"
)

// Global flags available on all commands
var (
	configFlag  string
	verboseFlag bool
	noColorFlag bool
)

// Generate flags, defined on the root command because running keymint
// without a subcommand is the generate workflow.
var (
	outDirFlag    string
	algorithmFlag string
	bitsFlag      int
	batchFlag     bool
	plainFlag     bool
)

// rootCmd is the base command. Identifiers not supplied as arguments are
// prompted for, each prompt pre-filled with a computed default.
var rootCmd = &cobra.Command{
	Use:   "keymint [user] [system] [unique] [-- extra-keygen-args...]",
	Short: "Mint paired SSH keys with identity-encoded file names",
	Long: `Keymint mints two SSH key pairs whose file names encode who they are
for, where they are used, and a unique identifier:

  {user}={system}={unique}=passphrase=id_rsa
  {user}={system}={unique}=automation=id_rsa

The passphrase pair prompts for a passphrase during generation; the
automation pair is minted with an empty passphrase for unattended use.
Missing identifiers are prompted for with computed defaults: an example
address for user, the hostname for system, and a fresh ZID for unique.

Examples:
  keymint
  keymint alice@example.com
  keymint ci@example.com build.example.com
  keymint alice@example.com demo.example.com 8af247255f409533f43c14cae2c07b97
  keymint --batch --algorithm ed25519 --out-dir ~/.ssh
  keymint -- -a 200`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag {
			ui.DisableColors()
		}
		// The logger gates debug output on this variable, so --verbose
		// only has to set it.
		if verboseFlag {
			os.Setenv("KEYMINT_DEBUG", "1")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateCommand(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "explicit config file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")

	rootCmd.Flags().StringVar(&outDirFlag, "out-dir", "", "directory the key files are written to")
	rootCmd.Flags().StringVar(&algorithmFlag, "algorithm", "", "key algorithm: rsa, ed25519, or ecdsa")
	rootCmd.Flags().IntVar(&bitsFlag, "bits", 0, "key size in bits")
	rootCmd.Flags().BoolVar(&batchFlag, "batch", false, "never prompt; missing identifiers take their defaults")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false, "plain line-based prompts instead of the interactive form")
}

// Config returns the explicit config path from the --config flag.
func Config() string {
	return configFlag
}

// Verbose reports whether --verbose was set.
func Verbose() bool {
	return verboseFlag
}

// Execute runs the root command and exits the process with the outcome's
// status code. Structured errors render themselves; a bare ExitError only
// forwards a status the command already reported on the terminal.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(*errors.ExitError); ok {
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)

		if code, ok := errors.GetExitCode(err); ok {
			os.Exit(code)
		}
		os.Exit(1)
	}
}
