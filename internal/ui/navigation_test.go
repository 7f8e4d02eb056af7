package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/tabshell/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNumberKeysSelectByPosition(t *testing.T) {
	m := newTestModel(t, nav.Options{})
	m.Update(runeKey('3'))
	if got := m.ActiveTabID(); got != "profile" {
		t.Fatalf("expected profile, got %s", got)
	}
	m.Update(runeKey('9'))
	if got := m.ActiveTabID(); got != "profile" {
		t.Fatalf("out of range position should be ignored, got %s", got)
	}
	m.Update(runeKey('1'))
	if got := m.ActiveTabID(); got != "home" {
		t.Fatalf("expected home, got %s", got)
	}
}

func TestArrowKeysCycleTabs(t *testing.T) {
	m := newTestModel(t, nav.Options{})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.ActiveTabID(); got != "profile" {
		t.Fatalf("expected wrap to profile, got %s", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.ActiveTabID(); got != "search" {
		t.Fatalf("expected search, got %s", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.ActiveTabID(); got != "home" {
		t.Fatalf("expected home, got %s", got)
	}
}

func TestUnknownSelectTabMsgKeepsActiveTab(t *testing.T) {
	m := newTestModel(t, nav.Options{})
	m.Update(SelectTabMsg{ID: "profile"})
	m.Update(SelectTabMsg{ID: "settings"})
	if got := m.ActiveTabID(); got != "profile" {
		t.Fatalf("expected profile to stay active, got %s", got)
	}
	if !strings.Contains(m.errMsg, `unknown tab "settings"`) {
		t.Fatalf("expected unknown tab error, got %q", m.errMsg)
	}
	m.Update(SelectTabMsg{ID: "home"})
	if m.errMsg != "" {
		t.Fatalf("expected error cleared after valid select, got %q", m.errMsg)
	}
}

func TestScrollStateRetainedAcrossSwitches(t *testing.T) {
	m := newTestModel(t, nav.Options{RetainState: true})
	m.SetScreen("home", tallScreen(40))
	for i := 0; i < 3; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := m.views["home"].YOffset; got != 3 {
		t.Fatalf("expected offset 3, got %d", got)
	}
	m.Update(runeKey('2'))
	m.Update(runeKey('1'))
	if got := m.views["home"].YOffset; got != 3 {
		t.Fatalf("expected offset restored to 3, got %d", got)
	}
}

func TestScrollStateDroppedWithoutRetention(t *testing.T) {
	m := newTestModel(t, nav.Options{})
	m.SetScreen("home", tallScreen(40))
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if got := m.views["home"].YOffset; got != 8 {
		t.Fatalf("expected a page of 8, got %d", got)
	}
	m.Update(runeKey('2'))
	m.Update(runeKey('1'))
	if got := m.views["home"].YOffset; got != 0 {
		t.Fatalf("expected fresh home tab, got offset %d", got)
	}
}

func TestReselectScrollTop(t *testing.T) {
	m := newTestModel(t, nav.Options{Reselect: nav.ReselectScrollTop})
	m.SetScreen("home", tallScreen(40))
	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if m.views["home"].YOffset == 0 {
		t.Fatalf("expected scrolled view")
	}
	m.Update(runeKey('1'))
	if got := m.views["home"].YOffset; got != 0 {
		t.Fatalf("expected reselect to scroll to top, got %d", got)
	}
}

func TestReselectNoneKeepsScroll(t *testing.T) {
	m := newTestModel(t, nav.Options{})
	m.SetScreen("home", tallScreen(40))
	m.Update(runeKey('j'))
	m.Update(runeKey('j'))
	m.Update(runeKey('1'))
	if got := m.views["home"].YOffset; got != 2 {
		t.Fatalf("expected reselect to keep offset 2, got %d", got)
	}
}

func TestMouseClickOnTabBarSelectsTab(t *testing.T) {
	m := newTestModel(t, nav.Options{})
	m.View()
	if m.tabBarRow != 11 {
		t.Fatalf("expected tab bar on row 11, got %d", m.tabBarRow)
	}
	m.Update(tea.MouseMsg{X: 35, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.ActiveTabID(); got != "search" {
		t.Fatalf("expected search, got %s", got)
	}
	m.Update(tea.MouseMsg{X: 89, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.ActiveTabID(); got != "profile" {
		t.Fatalf("expected profile, got %s", got)
	}
	m.Update(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.ActiveTabID(); got != "profile" {
		t.Fatalf("click outside the tab bar should be ignored, got %s", got)
	}
}

func TestMouseWheelScrolls(t *testing.T) {
	m := newTestModel(t, nav.Options{})
	m.SetScreen("home", tallScreen(40))
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := m.views["home"].YOffset; got != 1 {
		t.Fatalf("expected wheel to scroll by one, got %d", got)
	}
}

func TestHelpToggleShowsFooter(t *testing.T) {
	m := newTestModel(t, nav.Options{})
	before := m.bodyHeight()
	m.Update(runeKey('?'))
	if !m.help.ShowAll {
		t.Fatalf("expected full help")
	}
	if m.footerView() == "" || m.bodyHeight() >= before {
		t.Fatalf("expected footer to take body rows")
	}
}
