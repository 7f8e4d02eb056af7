package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/tabshell/internal/nav"
	"github.com/atomicstack/tabshell/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestViewShowsActiveScreenAndTabBar(t *testing.T) {
	m := newTestModel(t, nav.Options{})
	view := testutil.StripANSI(m.View())
	rows := strings.Split(view, "\n")
	if len(rows) != 12 {
		t.Fatalf("expected 12 rows, got %d:\n%s", len(rows), view)
	}
	if strings.TrimSpace(rows[0]) != "Home" {
		t.Fatalf("expected Home header, got %q", rows[0])
	}
	if !strings.Contains(view, "Home Page") {
		t.Fatalf("expected placeholder label, got:\n%s", view)
	}
	bar := rows[m.tabBarRow]
	for _, want := range []string{"◆ Home", "○ Search", "□ Profile"} {
		if !strings.Contains(bar, want) {
			t.Fatalf("expected %q in tab bar %q", want, bar)
		}
	}
	if strings.Index(bar, "Home") > strings.Index(bar, "Search") || strings.Index(bar, "Search") > strings.Index(bar, "Profile") {
		t.Fatalf("tab bar out of order: %q", bar)
	}
}

func TestViewFollowsSelection(t *testing.T) {
	m := newTestModel(t, nav.Options{})
	m.Update(runeKey('2'))
	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, "Search Page") || strings.Contains(view, "Home Page") {
		t.Fatalf("expected only the search screen, got:\n%s", view)
	}
	bar := strings.Split(view, "\n")[m.tabBarRow]
	if !strings.Contains(bar, "◇ Home") || !strings.Contains(bar, "● Search") {
		t.Fatalf("expected focus icons to follow selection, got %q", bar)
	}
}

func TestPlaceholderIsCentered(t *testing.T) {
	body := testutil.StripANSI(Placeholder("Profile Page").Body(30, 5))
	rows := strings.Split(body, "\n")
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	mid := rows[2]
	if strings.TrimSpace(mid) != "Profile Page" {
		t.Fatalf("expected label on middle row, got %q", mid)
	}
	if lead := len(mid) - len(strings.TrimLeft(mid, " ")); lead != 9 {
		t.Fatalf("expected 9 columns of left padding, got %d", lead)
	}
}

func TestRenderTabBarHitRanges(t *testing.T) {
	_, hits := renderTabBar(nav.DefaultTabs(), "home", 20)
	want := []hitRange{{0, 6, "home"}, {6, 12, "search"}, {12, 20, "profile"}}
	if len(hits) != len(want) {
		t.Fatalf("expected %d hits, got %d", len(want), len(hits))
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Fatalf("hit %d: expected %+v, got %+v", i, want[i], hits[i])
		}
	}
}

func TestRenderTabBarFitsWidth(t *testing.T) {
	bar, _ := renderTabBar(nav.DefaultTabs(), "search", 20)
	if got := lipgloss.Width(bar); got != 20 {
		t.Fatalf("expected bar width 20, got %d (%q)", got, testutil.StripANSI(bar))
	}
}

func TestRenderTabBarNarrowerThanTabs(t *testing.T) {
	_, hits := renderTabBar(nav.DefaultTabs(), "home", 2)
	for _, hit := range hits {
		if hit.end > 2 || hit.start >= hit.end {
			t.Fatalf("hit %+v falls outside a 2-column bar", hit)
		}
	}
	if len(hits) != 2 {
		t.Fatalf("expected only the tabs that fit, got %d", len(hits))
	}
}

func TestViewFitsTinyTerminal(t *testing.T) {
	m := NewModel(nav.MustNew(nav.DefaultTabs(), nav.Options{}), 2, 3, false, false)
	rows := strings.Split(testutil.StripANSI(m.View()), "\n")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %q", len(rows), rows)
	}
	for i, row := range rows {
		if w := lipgloss.Width(row); w > 2 {
			t.Fatalf("row %d is %d columns wide: %q", i, w, row)
		}
	}
	if m.tabBarRow != 2 {
		t.Fatalf("expected tab bar on the last row, got %d", m.tabBarRow)
	}
	for _, hit := range m.tabHits {
		if hit.end > 2 {
			t.Fatalf("hit %+v extends past the screen", hit)
		}
	}
	m.Update(tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.ActiveTabID(); got != "search" {
		t.Fatalf("expected click on the clamped bar to select search, got %s", got)
	}
}

func TestViewDropsFooterBeforeTabBar(t *testing.T) {
	m := NewModel(nav.MustNew(nav.DefaultTabs(), nav.Options{}), 90, 5, true, false)
	rows := strings.Split(testutil.StripANSI(m.View()), "\n")
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d: %q", len(rows), rows)
	}
	if m.tabBarRow != 4 {
		t.Fatalf("expected tab bar on row 4, got %d", m.tabBarRow)
	}
	if !strings.Contains(rows[4], "Profile") {
		t.Fatalf("expected tab bar as the last row, got %q", rows[4])
	}
}

func TestViewShowsErrorLine(t *testing.T) {
	m := newTestModel(t, nav.Options{})
	m.Update(SelectTabMsg{ID: "settings"})
	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, `Error: unknown tab "settings"`) {
		t.Fatalf("expected error line, got:\n%s", view)
	}
}

func TestViewGolden(t *testing.T) {
	m := NewModel(nav.MustNew(nav.DefaultTabs(), nav.Options{}), 36, 9, false, false)
	m.Update(runeKey('3'))
	testutil.AssertGolden(t, "profile_tab.golden", testutil.StripANSI(m.View()))
}
