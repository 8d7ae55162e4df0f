package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/keymint/keymint/internal/config"
	"github.com/keymint/keymint/internal/errors"
	"github.com/keymint/keymint/internal/identity"
	"github.com/keymint/keymint/internal/keygen"
	"github.com/keymint/keymint/internal/logger"
	"github.com/keymint/keymint/internal/naming"
	"github.com/keymint/keymint/internal/ui"
)

// GenerateOptions holds everything the generate workflow needs. Zero
// values fall through to config settings and the real tool.
type GenerateOptions struct {
	Args      []string // positional identifiers: user, system, unique
	ExtraArgs []string // forwarded to the key tool verbatim

	OutDir    string
	Algorithm string
	Bits      int
	Batch     bool
	Plain     bool

	Config *config.Config

	// Generator and Prompter are injectable for testing. A nil Generator
	// shells out to the configured tool; a nil Prompter outside batch mode
	// prompts on the terminal.
	Generator keygen.Generator
	Prompter  identity.Prompter

	// Stdout receives the four minted file paths. nil means os.Stdout.
	Stdout io.Writer
}

// Generate mints both key pairs: resolve the identifiers, build the file
// name stems, then invoke the tool once per key class, passphrase pair
// first. The first failure stops the run; pairs already minted stay on
// disk and their paths have already been echoed.
func Generate(opts GenerateOptions) error {
	log := logger.Default()

	if len(opts.Args) > 3 {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("Too many identifiers: got %d, expected at most 3", len(opts.Args)),
			"Usage: keymint [user] [system] [unique] [-- extra-keygen-args...]")
	}

	if opts.Algorithm != "" && !config.ValidAlgorithms[opts.Algorithm] {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("Unknown algorithm '%s'", opts.Algorithm),
			"Use 'rsa', 'ed25519', or 'ecdsa'")
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	id, err := resolveIdentity(opts, cfg)
	if err != nil {
		return err
	}
	log.Debug("resolved identifiers: user=%s system=%s unique=%s", id.User, id.System, id.Unique)

	warnUnparsableIdentifiers(id)

	settings := resolveSettings(opts, cfg)

	if err := ensureOutDir(settings.OutDir); err != nil {
		return err
	}

	gen := opts.Generator
	if gen == nil {
		tool := keygen.NewTool()
		tool.Path = settings.Tool
		gen = tool
	}

	base := naming.BaseForAlgorithm(settings.Algorithm)

	for _, class := range naming.Classes() {
		name := naming.Name{
			User:   id.User,
			System: id.System,
			Unique: id.Unique,
			Class:  class,
			Base:   base,
		}
		stem := name.String()

		req := keygen.Request{
			Algorithm:  settings.Algorithm,
			Bits:       settings.Bits,
			Comment:    stem,
			OutputPath: filepath.Join(settings.OutDir, stem),
			ExtraArgs:  opts.ExtraArgs,
		}
		if class == naming.ClassAutomation {
			// The passphrase pair omits -N so the tool prompts; the
			// automation pair passes an explicit empty passphrase.
			req.Passphrase = keygen.EmptyPassphrase()
		}

		log.Debug("minting %s pair: %s", class, stem)

		pair, err := gen.Generate(req)
		if err != nil {
			return err
		}

		fmt.Fprintln(stdout, pair.PrivatePath)
		fmt.Fprintln(stdout, pair.PublicPath)
	}

	return nil
}

// resolveIdentity fills the three identifier slots from arguments,
// prompts, and computed defaults. Batch mode suppresses prompting so every
// missing slot takes its default.
func resolveIdentity(opts GenerateOptions, cfg *config.Config) (identity.Identity, error) {
	prompter := opts.Prompter
	if batchMode(opts.Batch) {
		prompter = nil
	} else if prompter == nil {
		if opts.Plain {
			prompter = ui.NewLinePrompter(os.Stdin, os.Stdout)
		} else {
			prompter = ui.NewPrompter(os.Stdin, os.Stdout)
		}
	}

	resolver := identity.Resolver{
		Args:          opts.Args,
		Prompter:      prompter,
		DefaultUser:   cfg.Defaults.User,
		DefaultSystem: cfg.Defaults.System,
	}
	return resolver.Resolve()
}

// batchMode reports whether prompting is suppressed: the --batch flag, the
// KEYMINT_BATCH variable, or a CI environment.
func batchMode(flag bool) bool {
	return flag || os.Getenv("KEYMINT_BATCH") != "" || os.Getenv("CI") != ""
}

// warnUnparsableIdentifiers flags identifiers containing the name
// separator. They are accepted verbatim, but the minted names won't parse
// back into their fields.
func warnUnparsableIdentifiers(id identity.Identity) {
	slots := []struct {
		label string
		value string
	}{
		{"user", id.User},
		{"system", id.System},
		{"unique", id.Unique},
	}

	for _, slot := range slots {
		if naming.ContainsSeparator(slot.value) {
			ui.PrintWarning(fmt.Sprintf("%s identifier '%s' contains '%s'; 'keymint inspect' won't decode the minted names",
				slot.label, slot.value, naming.Separator))
		}
	}
}

// ensureOutDir creates the output directory when missing. The key tool
// does not create parent directories itself.
func ensureOutDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.WrapWithCode(err, errors.ErrEnvironment,
			fmt.Sprintf("Couldn't create output directory '%s'", dir),
			"Check the path and its permissions")
	}
	return nil
}

// splitArgs separates positional identifiers from pass-through tool args
// using the index cobra reports for "--". A negative index means no "--"
// was given.
func splitArgs(args []string, lenAtDash int) (positional, extra []string) {
	if lenAtDash < 0 {
		return args, nil
	}
	return args[:lenAtDash], args[lenAtDash:]
}

// generateCommand assembles options from flags and config, then runs the
// generate workflow.
func generateCommand(cmd *cobra.Command, args []string) error {
	positional, extra := splitArgs(args, cmd.ArgsLenAtDash())

	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}

	if !noColorFlag {
		ui.ConfigureColors(cfg.Output.Color)
	}

	return Generate(GenerateOptions{
		Args:      positional,
		ExtraArgs: extra,
		OutDir:    outDirFlag,
		Algorithm: algorithmFlag,
		Bits:      bitsFlag,
		Batch:     batchFlag,
		Plain:     plainFlag,
		Config:    cfg,
	})
}
