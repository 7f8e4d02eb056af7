package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/tabshell/internal/app"
	"github.com/atomicstack/tabshell/internal/config"
	"github.com/atomicstack/tabshell/internal/logging"
	"github.com/atomicstack/tabshell/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	size := detectTerminal(standardDescriptors())
	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(runtimeCfg, size))
	}

	if err := app.Run(withTerminalSize(runtimeCfg.App, size)); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminalSize is the first usable size found on a standard descriptor.
type terminalSize struct {
	Source string `json:"source,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s terminalSize) known() bool {
	return s.Width > 0 && s.Height > 0
}

type descriptor struct {
	name string
	fd   int
}

func standardDescriptors() []descriptor {
	return []descriptor{
		{"stdout", int(os.Stdout.Fd())},
		{"stdin", int(os.Stdin.Fd())},
		{"stderr", int(os.Stderr.Fd())},
	}
}

// detectTerminal returns the size of the first descriptor attached to a
// terminal. The zero value means no terminal answered, in which case the
// shell starts at its default size and waits for a WindowSizeMsg.
func detectTerminal(fds []descriptor) terminalSize {
	for _, d := range fds {
		if d.fd < 0 || !term.IsTerminal(d.fd) {
			continue
		}
		width, height, err := term.GetSize(d.fd)
		if err != nil || width <= 0 || height <= 0 {
			continue
		}
		return terminalSize{Source: d.name, Width: width, Height: height}
	}
	return terminalSize{}
}

// withTerminalSize sizes the first frame from the detected terminal. Explicit
// -width/-height values are fixed and win over the detected size.
func withTerminalSize(cfg app.Config, size terminalSize) app.Config {
	if !size.known() {
		return cfg
	}
	if cfg.Width <= 0 {
		cfg.InitialWidth = size.Width
	}
	if cfg.Height <= 0 {
		cfg.InitialHeight = size.Height
	}
	return cfg
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, size terminalSize) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"session": logging.SessionID(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	if size.known() {
		payload["terminal"] = size
	}
	return payload
}
