package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootCmd creates a fresh root command for testing.
// This keeps the generated scripts small and independent of init() order.
func resetRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keymint",
		Short: "Mint paired SSH keys with structured file names",
	}
	return cmd
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	// Verify basic bash completion structure
	assert.Contains(t, output, "# bash completion for keymint")
	assert.Contains(t, output, "__keymint_debug")
	assert.Contains(t, output, "complete -o default -F __start_keymint keymint")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenZshCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	// Verify basic zsh completion structure
	assert.Contains(t, output, "#compdef keymint")
	assert.Contains(t, output, "_keymint()")
}

func TestCompletionFishGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenFishCompletion(&buf, true)

	require.NoError(t, err)
	output := buf.String()

	// Verify basic fish completion structure
	assert.Contains(t, output, "fish completion for keymint")
	assert.Contains(t, output, "complete -c keymint")
}

func TestCompletionPowershellGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenPowerShellCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	// Verify basic powershell completion structure (case insensitive check)
	assert.Contains(t, strings.ToLower(output), "powershell completion")
	assert.Contains(t, output, "Register-ArgumentCompleter")
}

func TestCompletionIncludesBuiltinCommands(t *testing.T) {
	// Test using the real rootCmd which has all commands registered

	var buf bytes.Buffer
	err := rootCmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "__start_keymint", "should have start function")
	assert.Contains(t, output, "_keymint_root_command", "should have root command function")

	// Each registered subcommand generates its own function
	assert.Contains(t, output, "_keymint_init()")
	assert.Contains(t, output, "_keymint_doctor()")
	assert.Contains(t, output, "_keymint_inspect()")
	assert.Contains(t, output, "_keymint_zid()")
	assert.Contains(t, output, "_keymint_completion()")
}

func TestCompletionBashSyntaxValid(t *testing.T) {
	cmd := resetRootCmd()

	// Add some commands
	cmd.AddCommand(&cobra.Command{Use: "doctor", Short: "Check the environment"})
	cmd.AddCommand(&cobra.Command{Use: "zid", Short: "Mint identifiers"})

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	// Basic syntax checks - ensure no obvious errors
	// Check balanced braces
	openBraces := strings.Count(output, "{")
	closeBraces := strings.Count(output, "}")
	assert.Equal(t, openBraces, closeBraces, "braces should be balanced")

	// Should have the main function defined
	assert.Contains(t, output, "__start_keymint()")

	// Verify it contains the expected completion setup
	assert.Contains(t, output, "complete -o default -F __start_keymint keymint")
}

func TestCompletionCommandValidArgs(t *testing.T) {
	// Verify the completion command has correct valid args
	assert.Contains(t, completionCmd.ValidArgs, "bash")
	assert.Contains(t, completionCmd.ValidArgs, "zsh")
	assert.Contains(t, completionCmd.ValidArgs, "fish")
	assert.Contains(t, completionCmd.ValidArgs, "powershell")
	assert.Len(t, completionCmd.ValidArgs, 4)
}
