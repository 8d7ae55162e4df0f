// Package cli implements the keymint command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to workflow functions for the actual work. The general
// structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances)
//   - Workflow orchestration (Generate, Init, doctorCommand)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is the generate workflow itself: "keymint" with no
// subcommand resolves the three identifiers and mints both key pairs.
// Subcommands cover the supporting surface:
//
//	keymint [user] [system] [unique]  - Mint both key pairs
//	keymint init                      - Create .keymint.yaml config
//	keymint doctor                    - Diagnose environment issues
//	keymint inspect <file>...         - Decode minted key file names
//	keymint zid [count]               - Mint unique identifiers only
//	keymint version                   - Print version information
//	keymint completion <shell>        - Generate completion scripts
//
// # Generate Workflow
//
// The Generate function handles the phases every mint run goes through:
//
//  1. Resolve identifiers from arguments, prompts, and defaults
//  2. Merge flag settings over the loaded configuration
//  3. Invoke the key tool once per key class, passphrase pair first
//  4. Echo the minted private and public paths to stdout
//
// Generation is fail-fast: the first tool failure stops the run and its
// exit status is forwarded as keymint's own.
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command and available to all subcommands. The generate flags (--out-dir,
// --algorithm, --bits, --batch, --plain) live on the root command only,
// since the root command is the generate workflow.
//
// Flags win over config values, which win over built-in defaults. The
// Settings type carries the merged result.
package cli
