package tui

// Color constants for the dashboard theme
const (
	ColorBorder        = "#3A3F55" // Grey-blue
	ColorPrimaryText   = "#E6EAF2" // Field labels, titles
	ColorSecondaryText = "#B1B8C7" // Hints, captions
	ColorHelpText      = "240"     // Dark grey key help

	ColorAccentMain = "#2563EB" // Headers, active borders
	ColorRunning    = "#22C55E" // Running timers
	ColorFinished   = "#F59E0B" // Finished, awaiting reset
	ColorError      = "#EF4444" // Validation and collaborator errors
)
