package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tbsouza/projeta/internal/palette"
)

// Theme defines the color scheme for the UI. The base colors are fixed;
// the accent is whatever the user picked for the project and also drives
// the document header color.
type Theme struct {
	Accent palette.Accent

	// Base colors
	Background lipgloss.Color
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	Header lipgloss.Style
	Footer lipgloss.Style

	// Form styles
	FieldLabel        lipgloss.Style
	FieldLabelFocused lipgloss.Style
	FieldValue        lipgloss.Style
	FieldEmpty        lipgloss.Style
	FieldError        lipgloss.Style
	ListItem          lipgloss.Style
	ListItemFocused   lipgloss.Style

	// Input styles
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Placeholder  lipgloss.Style

	// Preview card styles
	CardBorder    lipgloss.Style
	CardHeader    lipgloss.Style
	CardBadge     lipgloss.Style
	CardLabel     lipgloss.Style
	CardValue     lipgloss.Style
	CardCheckDone lipgloss.Style

	// Panel styles
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	// Help styles
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
}

// base is the fixed dark palette underneath every accent
var base = struct {
	background, foreground, subtle, highlight, border lipgloss.Color
	success, warning, errColor, info                  lipgloss.Color
}{
	background: lipgloss.Color("#1E1E2E"),
	foreground: lipgloss.Color("#ECEFF4"),
	subtle:     lipgloss.Color("#6C7086"),
	highlight:  lipgloss.Color("#313244"),
	border:     lipgloss.Color("#45475A"),
	success:    lipgloss.Color("#A6E3A1"),
	warning:    lipgloss.Color("#F9E2AF"),
	errColor:   lipgloss.Color("#F38BA8"),
	info:       lipgloss.Color("#89B4FA"),
}

// NewTheme builds a theme from an accent color
func NewTheme(accent palette.Accent) Theme {
	return Theme{
		Accent:     accent,
		Background: base.background,
		Foreground: base.foreground,
		Subtle:     base.subtle,
		Highlight:  base.highlight,
		Border:     base.border,
		Success:    base.success,
		Warning:    base.warning,
		Error:      base.errColor,
		Info:       base.info,
	}
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	accent := t.Accent.Color()

	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 1),

		// Form styles
		FieldLabel: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Width(14),

		FieldLabelFocused: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Width(14),

		FieldValue: lipgloss.NewStyle().
			Foreground(t.Foreground),

		FieldEmpty: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true),

		FieldError: lipgloss.NewStyle().
			Foreground(t.Error),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		ListItemFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Highlight).
			Padding(0, 1),

		// Input styles
		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(t.Subtle),

		// Preview card styles
		CardBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		CardHeader: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1),

		CardBadge: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		CardLabel: lipgloss.NewStyle().
			Foreground(t.Subtle),

		CardValue: lipgloss.NewStyle().
			Foreground(t.Foreground),

		CardCheckDone: lipgloss.NewStyle().
			Foreground(t.Success),

		// Panel styles
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),

		PanelTitle: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1),

		// Help styles
		HelpKey: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.Subtle),

		HelpSeparator: lipgloss.NewStyle().
			Foreground(t.Border),
	}
}

// Current holds the current active theme and styles
var Current = struct {
	Theme  Theme
	Styles Styles
}{
	Theme:  NewTheme(palette.Default),
	Styles: NewStyles(NewTheme(palette.Default)),
}

// SetAccent changes the current accent color
func SetAccent(accent palette.Accent) {
	t := NewTheme(accent)
	Current.Theme = t
	Current.Styles = NewStyles(t)
}
