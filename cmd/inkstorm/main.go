// Package main is the entry point for the inkstorm demo editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/inkstorm/internal/backend"
	"github.com/dshills/inkstorm/internal/input/pointer"
	luatool "github.com/dshills/inkstorm/internal/plugin/lua"
	"github.com/dshills/inkstorm/internal/scene"
	"github.com/dshills/inkstorm/internal/settings"
	"github.com/dshills/inkstorm/internal/tool"
	"github.com/dshills/inkstorm/internal/toolmgr"
	"github.com/dshills/inkstorm/internal/tools"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	toolScript string
	toolKey    string
	logLevel   string
}

func main() {
	os.Exit(run())
}

// cursorProxy forwards cursor changes to the terminal once it exists. The
// manager is built before the terminal, so the target binds late.
type cursorProxy struct {
	term *backend.Terminal
}

func (c *cursorProxy) SetCursor(cursor string) {
	if c.term != nil {
		c.term.SetCursor(cursor)
	}
}

func run() int {
	opts := parseFlags()

	cfg, err := settings.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load settings: %v\n", err)
		return 1
	}
	store := settings.NewStore(cfg)

	logger, closeLog, err := newLogger(cfg.LogPath, opts.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	doc := scene.NewDocument()
	viewport := scene.NewViewport()
	keys := backend.NewKeybindings(logger)
	pan := backend.NewSpacePan()
	queue := pointer.NewQueue()
	cursor := &cursorProxy{}

	manager := toolmgr.New(toolmgr.Config{
		Keybindings: keys,
		Pan:         pan,
		Viewport:    viewport,
		Cursor:      cursor,
		Settings:    store,
		Scheduler:   queue,
		Logger:      logger,
	})

	descriptors := []tool.Descriptor{
		{Type: tool.TypeSelect, Hotkey: "v", New: tools.NewSelect(doc, viewport)},
		{Type: tool.TypeRect, Hotkey: "r", New: tools.NewRect(doc, viewport)},
		{Type: tool.TypePan, Hotkey: "h", New: tools.NewPan(viewport)},
	}

	if opts.toolScript != "" {
		source, err := os.ReadFile(opts.toolScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read tool script: %v\n", err)
			return 1
		}
		ctor, name, err := luatool.Constructor(string(source), logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid tool script: %v\n", err)
			return 1
		}
		descriptors = append(descriptors, tool.Descriptor{
			Type:   name,
			Hotkey: opts.toolKey,
			New:    ctor,
		})
	}

	enabled := make([]string, 0, len(descriptors))
	for _, desc := range descriptors {
		if err := manager.RegisterTool(desc); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to register tool %s: %v\n", desc.Type, err)
			return 1
		}
		enabled = append(enabled, desc.Type)
	}
	manager.SetEnableHotKeyTools(enabled)

	unsubViewport := viewport.OnXOrYChange(manager.OnViewportChange)
	defer unsubViewport()

	term, err := backend.NewTerminal(manager, keys, pan, doc, viewport, queue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	cursor.term = term

	if err := manager.SetActiveTool(cfg.InitialTool); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to activate tool %s: %v\n", cfg.InitialTool, err)
		return 1
	}

	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer term.Fini()

	manager.BindSource(term)
	defer manager.Destroy()
	defer manager.UnbindEvent()

	logger.Info("inkstorm started",
		"version", version, "tools", enabled, "initial", cfg.InitialTool)

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		term.Quit()
	}()

	if err := term.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "inkstorm.toml", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "inkstorm.toml", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.toolScript, "tool", "", "Path to a Lua tool script to register")
	flag.StringVar(&opts.toolKey, "tool-key", "x", "Hotkey for the Lua tool")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Inkstorm - terminal canvas with hotkey tool switching\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inkstorm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  v/r/h       switch tool (select, rect, pan)\n")
		fmt.Fprintf(os.Stderr, "  space       toggle pan-by-space\n")
		fmt.Fprintf(os.Stderr, "  q, Ctrl+C   quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Inkstorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	return opts
}

// newLogger builds the application logger. With no log path configured,
// logging is discarded; writing to stderr would corrupt the terminal UI.
func newLogger(path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	if path == "" {
		h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: lvl})
		return slog.New(h), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})
	return slog.New(h), func() { _ = f.Close() }, nil
}
