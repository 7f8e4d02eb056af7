package nav

// Tab is one navigable destination in the shell.
type Tab struct {
	ID      string `yaml:"id" json:"id"`
	Label   string `yaml:"label" json:"label"`
	IconKey string `yaml:"icon" json:"icon"`
}

// DefaultTabs returns the Home, Search and Profile tabs in display order.
func DefaultTabs() []Tab {
	return []Tab{
		{ID: "home", Label: "Home", IconKey: "home"},
		{ID: "search", Label: "Search", IconKey: "search"},
		{ID: "profile", Label: "Profile", IconKey: "person"},
	}
}

const outlineSuffix = "-outline"

// IconFor maps a tab and its focus state to an icon key. Inactive tabs use
// the outline variant of their icon.
func IconFor(tab Tab, active bool) string {
	if tab.IconKey == "" || active {
		return tab.IconKey
	}
	return tab.IconKey + outlineSuffix
}

func cloneTabs(tabs []Tab) []Tab {
	dup := make([]Tab, len(tabs))
	copy(dup, tabs)
	return dup
}
