package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Check passed, file minted
	SymbolFail     = "✗" // Check or generation failed
	SymbolPending  = "○" // Not yet started
	SymbolProgress = "◐" // In progress
	SymbolComplete = "●" // Done (alternative to success)
	SymbolSkipped  = "⊘" // Skipped
	SymbolWarning  = "⚠" // Needs attention, not fatal
)
