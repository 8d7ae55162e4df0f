package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandFlags(t *testing.T) {
	persistent := []string{"config", "verbose", "no-color"}
	for _, name := range persistent {
		flag := rootCmd.PersistentFlags().Lookup(name)
		assert.NotNil(t, flag, "persistent flag --%s should be registered", name)
	}

	local := []string{"out-dir", "algorithm", "bits", "batch", "plain"}
	for _, name := range local {
		flag := rootCmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "generate flag --%s should be registered", name)
	}

	verbose := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestRootCommandSubcommands(t *testing.T) {
	want := map[string]bool{
		"init":       false,
		"doctor":     false,
		"inspect":    false,
		"zid":        false,
		"version":    false,
		"completion": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		assert.True(t, found, "subcommand %q should be registered", name)
	}
}

func TestRootCommandSilencesCobra(t *testing.T) {
	// Errors carry their own rendering; cobra shouldn't print usage or
	// repeat the message on failure.
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestRootCommandAcceptsArbitraryArgs(t *testing.T) {
	// Identifier count validation happens in Generate so the error carries
	// a structured code; cobra itself accepts any argument list.
	err := rootCmd.Args(rootCmd, []string{"a", "b", "c", "d", "e"})
	assert.NoError(t, err)
}

func TestConfigAccessor(t *testing.T) {
	original := configFlag
	defer func() { configFlag = original }()

	configFlag = "/tmp/keymint-test.yaml"
	assert.Equal(t, "/tmp/keymint-test.yaml", Config())
}

func TestVerboseAccessor(t *testing.T) {
	original := verboseFlag
	defer func() { verboseFlag = original }()

	verboseFlag = true
	assert.True(t, Verbose())
}
