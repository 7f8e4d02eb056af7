package ui

import (
	"github.com/atomicstack/tabshell/internal/nav"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// Screen renders the body of one tab. The returned content may be taller
// than height; the model scrolls it inside a viewport.
type Screen interface {
	Body(width, height int) string
}

// ScreenFunc adapts a plain function to Screen.
type ScreenFunc func(width, height int) string

func (f ScreenFunc) Body(width, height int) string {
	return f(width, height)
}

// Placeholder renders text centered in the body area.
func Placeholder(text string) Screen {
	return ScreenFunc(func(width, height int) string {
		label := text
		if styles.Placeholder != nil {
			label = styles.Placeholder.Render(text)
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, label)
	})
}

// scrollSnapshot is the state retained for a tab between visits.
type scrollSnapshot struct {
	offset int
}

// Capture implements nav.StateKeeper.
func (m *Model) Capture(id string) nav.Snapshot {
	vp, ok := m.views[id]
	if !ok {
		return scrollSnapshot{}
	}
	return scrollSnapshot{offset: vp.YOffset}
}

// Restore implements nav.StateKeeper.
func (m *Model) Restore(id string, snap nav.Snapshot) {
	vp, ok := m.views[id]
	if !ok {
		return
	}
	s, ok := snap.(scrollSnapshot)
	if !ok {
		return
	}
	m.refreshView(id)
	vp.SetYOffset(s.offset)
}

// Reset implements nav.StateKeeper.
func (m *Model) Reset(id string) {
	vp, ok := m.views[id]
	if !ok {
		return
	}
	m.refreshView(id)
	vp.GotoTop()
}

// refreshView sizes the tab's viewport to the body area and reloads its content.
func (m *Model) refreshView(id string) {
	vp, ok := m.views[id]
	if !ok {
		return
	}
	w, h := m.bodyWidth(), m.bodyHeight()
	vp.Width = w
	vp.Height = h
	screen := m.screens[id]
	if screen == nil {
		vp.SetContent("")
		return
	}
	vp.SetContent(screen.Body(w, h))
}

func (m *Model) activeView() *viewport.Model {
	return m.views[m.ActiveTabID()]
}
