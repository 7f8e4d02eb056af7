package ui

import (
	"fmt"

	"github.com/atomicstack/tabshell/internal/logging"
	"github.com/atomicstack/tabshell/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// selectTab routes a selection through the navigator and reports the outcome
// on the status line. Input handlers only pass ids taken from the tab set, so
// an error here means a host sent a bad SelectTabMsg.
func (m *Model) selectTab(id string) tea.Cmd {
	tr, err := m.nav.SelectTab(id)
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return nil
	}
	m.errMsg = ""
	m.refreshView(tr.To.ID)
	switch {
	case tr.Reselected && tr.Reset:
		if m.verbose {
			m.setInfo(fmt.Sprintf("%s reset to top", tr.To.Label))
		}
	case tr.Reselected:
	default:
		m.forceClearInfo()
		if m.verbose {
			m.setInfo(fmt.Sprintf("Switched to %s", tr.To.Label))
		}
	}
	return nil
}

func (m *Model) selectOffset(delta int) tea.Cmd {
	return m.selectTab(m.nav.Offset(delta).ID)
}

// selectPosition handles the number keys; positions start at 1.
func (m *Model) selectPosition(pos int) tea.Cmd {
	tab, ok := m.nav.TabAt(pos - 1)
	if !ok {
		return nil
	}
	return m.selectTab(tab.ID)
}

func (m *Model) scrollBy(delta int) {
	vp := m.activeView()
	if vp == nil {
		return
	}
	m.refreshView(m.ActiveTabID())
	before := vp.YOffset
	vp.SetYOffset(vp.YOffset + delta)
	if vp.YOffset != before {
		events.UI.Scroll(m.ActiveTabID(), vp.YOffset)
	}
}

func (m *Model) scrollTo(top bool) {
	vp := m.activeView()
	if vp == nil {
		return
	}
	m.refreshView(m.ActiveTabID())
	if top {
		vp.GotoTop()
	} else {
		vp.GotoBottom()
	}
	events.UI.Scroll(m.ActiveTabID(), vp.YOffset)
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(m.ActiveTabID(), keyMsg.String())
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Next):
		return m.selectOffset(1)
	case key.Matches(keyMsg, m.keys.Prev):
		return m.selectOffset(-1)
	case key.Matches(keyMsg, m.keys.Select):
		return m.selectPosition(int(keyMsg.Runes[0] - '0'))
	case key.Matches(keyMsg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.scrollBy(-m.bodyHeight())
	case key.Matches(keyMsg, m.keys.PageDown):
		m.scrollBy(m.bodyHeight())
	case key.Matches(keyMsg, m.keys.Top):
		m.scrollTo(true)
	case key.Matches(keyMsg, m.keys.Bottom):
		m.scrollTo(false)
	case key.Matches(keyMsg, m.keys.Jump):
		return m.openPrompt()
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeViews()
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-1)
		return nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(1)
		return nil
	}
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	if mouse.Y != m.tabBarRow {
		return nil
	}
	id := m.tabAtColumn(mouse.X)
	events.UI.Mouse(mouse.X, mouse.Y, id)
	if id == "" {
		return nil
	}
	return m.selectTab(id)
}

func (m *Model) tabAtColumn(x int) string {
	for _, hit := range m.tabHits {
		if x >= hit.start && x < hit.end {
			return hit.id
		}
	}
	return ""
}

func (m *Model) handleSelectTabMsg(msg tea.Msg) tea.Cmd {
	sel, ok := msg.(SelectTabMsg)
	if !ok {
		return nil
	}
	return m.selectTab(sel.ID)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.resizeViews()
	return nil
}

// resizeViews reflows every tab so retained offsets stay within bounds.
func (m *Model) resizeViews() {
	for _, tab := range m.nav.ListTabs() {
		m.refreshView(tab.ID)
	}
	m.help.Width = m.bodyWidth()
}
