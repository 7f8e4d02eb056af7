package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/tabshell/internal/logging/events"
	"github.com/atomicstack/tabshell/internal/nav"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

func newJumpPrompt() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "go to › "
	ti.Placeholder = "tab name"
	ti.CharLimit = 32
	// A static cursor keeps the prompt free of blink ticks.
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.Prompt != nil {
		ti.PromptStyle = *styles.Prompt
	}
	return ti
}

func (m *Model) openPrompt() tea.Cmd {
	m.prompting = true
	m.prompt.SetValue("")
	m.errMsg = ""
	m.forceClearInfo()
	return m.prompt.Focus()
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.SetValue("")
}

// handlePromptMsg consumes key input while the jump prompt is open. Other
// messages fall through to the regular handlers; a left click dismisses the
// prompt first so the click lands on the shell underneath.
func (m *Model) handlePromptMsg(msg tea.Msg) (bool, tea.Cmd) {
	if mouse, ok := msg.(tea.MouseMsg); ok {
		if mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonLeft {
			m.closePrompt()
		}
		return false, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return false, cmd
	}
	switch keyMsg.Type {
	case tea.KeyCtrlC:
		return true, tea.Quit
	case tea.KeyEsc:
		m.closePrompt()
		return true, nil
	case tea.KeyEnter:
		query := m.prompt.Value()
		m.closePrompt()
		return true, m.jumpTo(query)
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(keyMsg)
	return true, cmd
}

func (m *Model) jumpTo(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	tab, ok := matchTab(query, m.nav.ListTabs())
	if !ok {
		events.UI.Jump(query, "")
		m.setInfo(fmt.Sprintf("No tab matches %q", query))
		return nil
	}
	events.UI.Jump(query, tab.ID)
	return m.selectTab(tab.ID)
}

// matchTab ranks tab labels and ids against query and returns the closest
// tab. Each tab contributes two targets, so OriginalIndex/2 is its position.
func matchTab(query string, tabs []nav.Tab) (nav.Tab, bool) {
	targets := make([]string, 0, len(tabs)*2)
	for _, tab := range tabs {
		targets = append(targets, tab.Label, tab.ID)
	}
	ranks := fuzzy.RankFindFold(query, targets)
	if len(ranks) == 0 {
		return nav.Tab{}, false
	}
	sort.Stable(ranks)
	return tabs[ranks[0].OriginalIndex/2], true
}
