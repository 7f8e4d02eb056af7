package events

import "github.com/atomicstack/tabshell/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Key(tab, key string) {
	logging.Trace("ui.key", map[string]interface{}{"tab": tab, "key": key})
}

func (UITracer) Scroll(tab string, offset int) {
	logging.Trace("ui.scroll", map[string]interface{}{"tab": tab, "offset": offset})
}

func (UITracer) Jump(query, match string) {
	logging.Trace("ui.jump", map[string]interface{}{"query": query, "match": match})
}

func (UITracer) Mouse(x, y int, tab string) {
	logging.Trace("ui.mouse", map[string]interface{}{"x": x, "y": y, "tab": tab})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}
