package nav

import (
	"fmt"
	"strings"
)

// ReselectPolicy controls what happens when the active tab is selected again.
type ReselectPolicy int

const (
	// ReselectNone leaves the tab untouched.
	ReselectNone ReselectPolicy = iota
	// ReselectScrollTop resets the tab to its initial UI state and drops any
	// retained snapshot.
	ReselectScrollTop
)

func (p ReselectPolicy) String() string {
	switch p {
	case ReselectScrollTop:
		return "scroll-top"
	default:
		return "none"
	}
}

// ParseReselectPolicy converts a config value into a ReselectPolicy.
func ParseReselectPolicy(value string) (ReselectPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return ReselectNone, nil
	case "scroll-top", "scrolltop", "top":
		return ReselectScrollTop, nil
	default:
		return ReselectNone, fmt.Errorf("invalid reselect policy %q (want none or scroll-top)", value)
	}
}

// Options configures optional navigator behaviour.
type Options struct {
	RetainState bool
	Reselect    ReselectPolicy
}
