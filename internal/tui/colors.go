package tui

// Color constants for the arqueo TUI theme
const (
	// Base Colors
	ColorCardBackground = "#101826" // Dark slate
	ColorBorder         = "#2E3A4E" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Field labels, user input, titles
	ColorSecondaryText = "#9AA5B5" // Secondary text
	ColorDisabledText  = "#5E6775" // Disabled/muted text
	ColorPlaceholder   = "#9AA5B5"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (cash-register green)
	ColorAccentMain   = "#10B981" // Titles, accent elements, active borders
	ColorAccentBright = "#34D399" // Highlights, selected row

	// State Colors
	ColorError   = "#EF4444" // Validation errors, shortfall, egresos
	ColorSuccess = "#22C55E" // Success, surplus, ingresos
	ColorWarning = "#F59E0B" // Warnings, closed-session notices
	ColorNeutral = "#94A3B8" // Exact variance, neutral tags
)
