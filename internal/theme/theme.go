package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header      *lipgloss.Style
	TabBar      *lipgloss.Style
	Tab         *lipgloss.Style
	ActiveTab   *lipgloss.Style
	Error       *lipgloss.Style
	Info        *lipgloss.Style
	Footer      *lipgloss.Style
	Prompt      *lipgloss.Style
	Placeholder *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	TabBar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

// Glyphs maps icon keys to terminal glyphs. Outline keys are the unfocused
// variants of their filled counterparts.
var glyphs = map[string]string{
	"home":           "◆",
	"home-outline":   "◇",
	"search":         "●",
	"search-outline": "○",
	"person":         "■",
	"person-outline": "□",
}

const fallbackGlyph = "•"

// Glyph returns the glyph for an icon key. Unknown keys fall back to a bullet
// and an empty key renders nothing.
func Glyph(iconKey string) string {
	if iconKey == "" {
		return ""
	}
	if g, ok := glyphs[iconKey]; ok {
		return g
	}
	return fallbackGlyph
}
