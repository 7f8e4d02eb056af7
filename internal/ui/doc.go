// Package ui contains the Bubble Tea program that hosts the tab navigator.
// The Model type focuses on message orchestration, while dedicated helpers own
// navigation, the jump prompt, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While the jump prompt is open, key presses go to the prompt
//     (internal/ui/jump.go). Everything else is routed through a typed handler
//     registry so each tea.Msg is handled by a focused function.
//   - Key, mouse, and SelectTabMsg handlers (internal/ui/navigation.go)
//     translate input into nav.Navigator.SelectTab calls. The navigator is the
//     only writer of the active tab.
//
// State ownership:
//   - The active tab and retained snapshots live in nav.Navigator.
//   - Each tab owns a bubbles viewport. The Model implements nav.StateKeeper
//     on top of those viewports, so a snapshot is a scroll offset.
//   - Screen bodies come from per-tab Screen callbacks; the default is a
//     centered placeholder label.
//
// Rendering (internal/ui/view.go) records the tab bar row and the column span
// of every tab cell so mouse presses can be hit-tested against the last frame.
package ui
