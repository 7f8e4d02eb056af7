package nav

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tabshell/internal/logging/events"
)

// Snapshot is an opaque per-tab UI state captured by a StateKeeper.
type Snapshot any

// StateKeeper is implemented by the host UI to capture and restore the
// visual state of individual tabs.
type StateKeeper interface {
	Capture(id string) Snapshot
	Restore(id string, snap Snapshot)
	Reset(id string)
}

// Transition describes the outcome of a SelectTab call.
type Transition struct {
	From       Tab
	To         Tab
	Reselected bool
	Restored   bool
	Reset      bool
}

// Navigator owns the navigation state: the fixed tab set, the active tab and
// any retained per-tab snapshots. It is not safe for concurrent use; callers
// drive it from the UI event loop.
type Navigator struct {
	tabs     []Tab
	index    map[string]int
	active   int
	retained map[string]Snapshot
	opts     Options
	keeper   StateKeeper
}

// New validates the tab set and returns a navigator with the first tab active.
func New(tabs []Tab, opts Options) (*Navigator, error) {
	if len(tabs) == 0 {
		return nil, errors.New("tab set is empty")
	}
	index := make(map[string]int, len(tabs))
	for i, tab := range tabs {
		if tab.ID == "" {
			return nil, fmt.Errorf("tab %d has an empty id", i)
		}
		if prev, exists := index[tab.ID]; exists {
			return nil, fmt.Errorf("duplicate tab id %q at positions %d and %d", tab.ID, prev, i)
		}
		index[tab.ID] = i
	}
	return &Navigator{
		tabs:     cloneTabs(tabs),
		index:    index,
		retained: make(map[string]Snapshot),
		opts:     opts,
	}, nil
}

// MustNew is New for statically known tab sets; it panics on invalid input.
func MustNew(tabs []Tab, opts Options) *Navigator {
	n, err := New(tabs, opts)
	if err != nil {
		panic(fmt.Sprintf("nav: %v", err))
	}
	return n
}

// SetKeeper installs the host collaborator used for snapshot effects. A nil
// keeper disables them.
func (n *Navigator) SetKeeper(k StateKeeper) {
	n.keeper = k
}

// SelectTab makes id the active tab.
func (n *Navigator) SelectTab(id string) (Transition, error) {
	target, ok := n.index[id]
	if !ok {
		events.Nav.Unknown(id, n.tabs[n.active].ID)
		return Transition{}, &UnknownTabError{ID: id}
	}
	from := n.tabs[n.active]
	to := n.tabs[target]
	tr := Transition{From: from, To: to}

	if target == n.active {
		tr.Reselected = true
		if n.opts.Reselect == ReselectScrollTop {
			delete(n.retained, id)
			n.reset(id)
			tr.Reset = true
		}
		events.Nav.Reselect(id, n.opts.Reselect.String(), tr.Reset)
		return tr, nil
	}

	if n.opts.RetainState && n.keeper != nil {
		n.retained[from.ID] = n.keeper.Capture(from.ID)
		events.Nav.Capture(from.ID)
	}
	n.active = target
	if snap, ok := n.retained[to.ID]; ok && n.opts.RetainState && n.keeper != nil {
		n.keeper.Restore(to.ID, snap)
		events.Nav.Restore(to.ID)
		tr.Restored = true
	} else {
		n.reset(to.ID)
		tr.Reset = n.keeper != nil
	}
	events.Nav.Select(from.ID, to.ID, tr.Restored)
	return tr, nil
}

// MustSelectTab selects a tab that is known to exist and panics otherwise.
func (n *Navigator) MustSelectTab(id string) Transition {
	tr, err := n.SelectTab(id)
	if err != nil {
		panic(err)
	}
	return tr
}

func (n *Navigator) reset(id string) {
	if n.keeper == nil {
		return
	}
	n.keeper.Reset(id)
	events.Nav.Reset(id)
}

// CurrentTab returns the active tab.
func (n *Navigator) CurrentTab() Tab {
	return n.tabs[n.active]
}

// ActiveIndex returns the position of the active tab.
func (n *Navigator) ActiveIndex() int {
	return n.active
}

// ListTabs returns the configured tabs in display order. The slice is a copy.
func (n *Navigator) ListTabs() []Tab {
	return cloneTabs(n.tabs)
}

// Index returns the position of id.
func (n *Navigator) Index(id string) (int, bool) {
	i, ok := n.index[id]
	return i, ok
}

// TabAt returns the tab at position i.
func (n *Navigator) TabAt(i int) (Tab, bool) {
	if i < 0 || i >= len(n.tabs) {
		return Tab{}, false
	}
	return n.tabs[i], true
}

// Offset returns the tab delta positions away from the active one, wrapping
// at both ends.
func (n *Navigator) Offset(delta int) Tab {
	size := len(n.tabs)
	i := ((n.active+delta)%size + size) % size
	return n.tabs[i]
}

// Retained returns the snapshot held for id, if any.
func (n *Navigator) Retained(id string) (Snapshot, bool) {
	snap, ok := n.retained[id]
	return snap, ok
}
