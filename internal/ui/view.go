package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tabshell/internal/nav"
	"github.com/atomicstack/tabshell/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	headerRows    = 1
	statusRows    = 1
	tabBarRows    = 2 // separator + tabs
	tabSeparator  = "─"
	truncateTail  = "…"
	minBodyHeight = 1
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.size()
	active := m.nav.CurrentTab()

	lines := make([]styledLine, 0, m.bodyHeight()+6)
	lines = append(lines, styledLine{text: active.Label, style: styles.Header})
	lines = append(lines, m.bodyLines()...)
	lines = append(lines, m.statusLine())
	lines = append(lines, styledLine{text: strings.Repeat(tabSeparator, width), style: styles.TabBar})

	bar, hits := renderTabBar(m.nav.ListTabs(), active.ID, width)
	m.tabBarRow = len(lines)
	m.tabHits = hits
	lines = append(lines, styledLine{text: bar, raw: true})

	footerStart := len(lines)
	if footer := m.footerView(); footer != "" {
		for _, row := range strings.Split(footer, "\n") {
			lines = append(lines, styledLine{text: row, raw: true})
		}
	}
	lines, dropped := fitHeight(lines, footerStart, height)
	m.tabBarRow -= dropped
	return renderLines(applyWidth(lines, width))
}

// fitHeight trims lines to at most height rows. Footer rows go first, then
// rows from the top, so the tab bar is the last thing to leave the screen.
// It reports how many rows were dropped from the top.
func fitHeight(lines []styledLine, footerStart, height int) ([]styledLine, int) {
	if height <= 0 || len(lines) <= height {
		return lines, 0
	}
	if footerStart < len(lines) {
		lines = lines[:max(footerStart, height)]
	}
	if len(lines) <= height {
		return lines, 0
	}
	drop := len(lines) - height
	return lines[drop:], drop
}

func (m *Model) bodyLines() []styledLine {
	id := m.ActiveTabID()
	m.refreshView(id)
	height := m.bodyHeight()
	lines := make([]styledLine, 0, height)
	if vp := m.views[id]; vp != nil {
		for _, row := range strings.Split(vp.View(), "\n") {
			if len(lines) == height {
				break
			}
			lines = append(lines, styledLine{text: row, raw: true})
		}
	}
	for len(lines) < height {
		lines = append(lines, styledLine{})
	}
	return lines
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.prompting:
		return styledLine{text: m.prompt.View(), raw: true}
	case m.errMsg != "":
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	return styledLine{}
}

// footerView renders key hints. Full help forces the footer on even when it
// is disabled in the config.
func (m *Model) footerView() string {
	if !m.showFooter && !m.help.ShowAll {
		return ""
	}
	view := m.help.View(m.keys)
	if styles.Footer != nil {
		view = styles.Footer.Render(view)
	}
	return view
}

func (m *Model) bodyWidth() int {
	w, _ := m.size()
	return w
}

func (m *Model) bodyHeight() int {
	_, h := m.size()
	footer := 0
	if view := m.footerView(); view != "" {
		footer = lipgloss.Height(view)
	}
	body := h - headerRows - statusRows - tabBarRows - footer
	if body < minBodyHeight {
		body = minBodyHeight
	}
	return body
}

// renderTabBar lays tabs out in equal-width cells in display order and
// returns the rendered row with the column span of each cell.
func renderTabBar(tabs []nav.Tab, activeID string, width int) (string, []hitRange) {
	if len(tabs) == 0 {
		return "", nil
	}
	cellWidth := width / len(tabs)
	if cellWidth < 1 {
		cellWidth = 1
	}
	var b strings.Builder
	hits := make([]hitRange, 0, len(tabs))
	x := 0
	for i, tab := range tabs {
		if x >= width {
			break
		}
		w := cellWidth
		if i == len(tabs)-1 && width-x > w {
			w = width - x
		}
		if x+w > width {
			w = width - x
		}
		isActive := tab.ID == activeID
		text := tab.Label
		if glyph := theme.Glyph(nav.IconFor(tab, isActive)); glyph != "" {
			text = glyph + " " + tab.Label
		}
		if lipgloss.Width(text) > w {
			text = truncate.StringWithTail(text, uint(w), truncateTail)
		}
		cell := lipgloss.PlaceHorizontal(w, lipgloss.Center, text)
		style := styles.Tab
		if isActive {
			style = styles.ActiveTab
		}
		if style != nil {
			cell = style.Render(cell)
		}
		b.WriteString(cell)
		hits = append(hits, hitRange{start: x, end: x + w, id: tab.ID})
		x += w
	}
	return b.String(), hits
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), truncateTail)
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + truncateTail
}
