package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/tabshell/internal/app"
	"github.com/atomicstack/tabshell/internal/nav"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig      = "TABSHELL_CONFIG"
	envWidth       = "TABSHELL_WIDTH"
	envHeight      = "TABSHELL_HEIGHT"
	envShowFooter  = "TABSHELL_FOOTER"
	envVerbose     = "TABSHELL_VERBOSE"
	envTrace       = "TABSHELL_TRACE"
	envLogFile     = "TABSHELL_LOG_FILE"
	envRetainState = "TABSHELL_RETAIN_STATE"
	envReselect    = "TABSHELL_RESELECT"
)

// Load parses configuration from CLI arguments, environment variables and
// the optional YAML config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Later sources
// win: defaults, config file, environment, flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tabshell", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", "", "path to a YAML config file")
	width := fs.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", false, "show the key hint footer")
	trace := fs.Bool("trace", false, "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", false, "print a status message on every tab switch")
	logFile := fs.String("log-file", "", "path to the log file")
	retain := fs.Bool("retain-state", true, "keep each tab's scroll position across switches")
	reselect := fs.String("reselect", "", "what reselecting the active tab does: none or scroll-top")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path := envOrDefault(env, envConfig, "")
	if set["config"] {
		path = *configPath
	}
	file, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}

	w := envOrInt(env, envWidth, file.intOr(file.Width, 0))
	h := envOrInt(env, envHeight, file.intOr(file.Height, 0))
	showFooter := envOrBool(env, envShowFooter, file.boolOr(file.Footer, false))
	traceOn := envOrBool(env, envTrace, file.boolOr(file.Trace, false))
	verboseOn := envOrBool(env, envVerbose, file.boolOr(file.Verbose, false))
	logPath := envOrDefault(env, envLogFile, file.stringOr(file.LogFile, ""))
	retainOn := envOrBool(env, envRetainState, file.boolOr(file.RetainState, true))
	reselectMode := envOrDefault(env, envReselect, file.stringOr(file.Reselect, ""))

	if set["width"] {
		w = *width
	}
	if set["height"] {
		h = *height
	}
	if set["footer"] {
		showFooter = *footer
	}
	if set["trace"] {
		traceOn = *trace
	}
	if set["verbose"] {
		verboseOn = *verbose
	}
	if set["log-file"] {
		logPath = *logFile
	}
	if set["retain-state"] {
		retainOn = *retain
	}
	if set["reselect"] {
		reselectMode = *reselect
	}

	if w < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", w)
	}
	if h < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", h)
	}

	cfg := Config{
		App: app.Config{
			Width:       w,
			Height:      h,
			ShowFooter:  showFooter,
			Verbose:     verboseOn,
			RetainState: retainOn,
			Reselect:    reselectMode,
			Tabs:        file.Tabs,
		},
		Logging: Logging{
			FilePath: logPath,
			Trace:    traceOn,
		},
		Flags: map[string]string{
			"config":      path,
			"width":       strconv.Itoa(w),
			"height":      strconv.Itoa(h),
			"footer":      strconv.FormatBool(showFooter),
			"trace":       strconv.FormatBool(traceOn),
			"verbose":     strconv.FormatBool(verboseOn),
			"logFile":     logPath,
			"retainState": strconv.FormatBool(retainOn),
			"reselect":    reselectMode,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values that only make sense once all sources are merged.
func Validate(cfg Config) error {
	if _, err := nav.ParseReselectPolicy(cfg.App.Reselect); err != nil {
		return err
	}
	if len(cfg.App.Tabs) > 0 {
		if _, err := nav.New(cfg.App.Tabs, nav.Options{}); err != nil {
			return fmt.Errorf("tabs: %w", err)
		}
	}
	return nil
}
