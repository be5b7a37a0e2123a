package ui

// Unicode symbols for status indicators.
const (
	SymbolFail   = "✗"
	SymbolCursor = "❯"
)
