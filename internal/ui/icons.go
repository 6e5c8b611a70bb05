package ui

// Registration icons for each colormap
const (
	IconRegistered   = "●"
	IconUnregistered = "○"
	IconConflict     = "✗"
)

// UI icons for various UI elements
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconFont    = "Aa"
)
