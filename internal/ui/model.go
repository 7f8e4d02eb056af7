package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/tabshell/internal/nav"
	"github.com/atomicstack/tabshell/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	infoLifetime  = 5 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// SelectTabMsg asks the model to activate a tab. Hosts use it to drive
// navigation programmatically.
type SelectTabMsg struct {
	ID string
}

// hitRange is the horizontal span of one rendered tab cell.
type hitRange struct {
	start, end int
	id         string
}

// Model implements the Bubble Tea model for the tab shell.
type Model struct {
	nav     *nav.Navigator
	screens map[string]Screen
	views   map[string]*viewport.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	keys      keyMap
	help      help.Model
	prompt    textinput.Model
	prompting bool

	tabHits   []hitRange
	tabBarRow int

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI around navigator and registers itself as the
// navigator's state keeper.
func NewModel(navigator *nav.Navigator, width, height int, showFooter, verbose bool) *Model {
	m := &Model{
		nav:        navigator,
		screens:    make(map[string]Screen),
		views:      make(map[string]*viewport.Model),
		showFooter: showFooter,
		verbose:    verbose,
		keys:       defaultKeyMap(),
		help:       help.New(),
		tabBarRow:  -1,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	for _, tab := range navigator.ListTabs() {
		m.screens[tab.ID] = Placeholder(tab.Label + " Page")
		vp := viewport.New(m.bodyWidth(), m.bodyHeight())
		m.views[tab.ID] = &vp
	}
	m.prompt = newJumpPrompt()
	navigator.SetKeeper(m)
	m.registerHandlers()
	return m
}

// SetScreen replaces the render callback for a tab.
func (m *Model) SetScreen(id string, screen Screen) {
	if _, ok := m.views[id]; !ok || screen == nil {
		return
	}
	m.screens[id] = screen
	m.refreshView(id)
}

// SetInitialSize seeds the layout with the terminal size known before the
// first WindowSizeMsg arrives. Fixed dimensions are left alone.
func (m *Model) SetInitialSize(width, height int) {
	if width > 0 && !m.fixedWidth {
		m.width = width
	}
	if height > 0 && !m.fixedHeight {
		m.height = height
	}
	m.resizeViews()
}

// ActiveTabID returns the id of the tab currently displayed.
func (m *Model) ActiveTabID() string {
	return m.nav.CurrentTab().ID
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.refreshView(m.ActiveTabID())
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if m.prompting {
		handled, cmd := m.handlePromptMsg(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if handled {
			return m, finishUpdate(cmds)
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, finishUpdate(cmds)
}

func finishUpdate(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(SelectTabMsg{}):      m.handleSelectTabMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}
