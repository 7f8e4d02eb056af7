package events

import "github.com/atomicstack/tabshell/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Select(from, to string, restored bool) {
	logging.Trace("nav.select", map[string]interface{}{"from": from, "to": to, "restored": restored})
}

func (NavTracer) Reselect(id, policy string, reset bool) {
	logging.Trace("nav.reselect", map[string]interface{}{"tab": id, "policy": policy, "reset": reset})
}

// Unknown records a rejected selection; active is the tab that stays selected.
func (NavTracer) Unknown(id, active string) {
	logging.Trace("nav.unknown", map[string]interface{}{"tab": id, "active": active})
}

func (NavTracer) Capture(id string) {
	logging.Trace("nav.capture", map[string]interface{}{"tab": id})
}

func (NavTracer) Restore(id string) {
	logging.Trace("nav.restore", map[string]interface{}{"tab": id})
}

func (NavTracer) Reset(id string) {
	logging.Trace("nav.reset", map[string]interface{}{"tab": id})
}
