// Package ui provides terminal output helpers for keymint's CLI.
//
// The package covers three concerns: styled text output using the Lip Gloss
// library, unicode status symbols shared by the doctor and inspect renderers,
// and the identifier prompters used by the generate workflow.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings and skipped items
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, hints
//	ColorSecondary (blue)   - In-progress indicators
//
// Use DisableColors() to switch to monochrome output (for --no-color flag),
// or ConfigureColors() to apply a configured color mode.
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolSuccess  (checkmark)  - Check passed, file minted
//	SymbolFail     (X)          - Check or generation failed
//	SymbolPending  (circle)     - Not yet started
//	SymbolProgress (half-fill)  - In progress
//	SymbolComplete (filled)     - Done (alternative to success)
//	SymbolSkipped  (slashed)    - Skipped
//	SymbolWarning  (triangle)   - Needs attention, not fatal
//
// # Prompters
//
// Two Prompter implementations ask the operator for identifier values:
//
//	FormPrompter - Huh input form, used when stdin is a terminal
//	LinePrompter - Plain two-line prompt with a buffered line read, used
//	               when input is piped or --plain is set
//
// NewPrompter picks the right one for the current stdin. The LinePrompter
// output format is frozen so shell wrappers can drive it:
//
//	{question}
//	Default: {default}
package ui
