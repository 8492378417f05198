package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jonboulle/clockwork"

	"github.com/Makepad-fr/focusdash/internal/config"
	"github.com/Makepad-fr/focusdash/internal/logging"
	"github.com/Makepad-fr/focusdash/internal/record"
	"github.com/Makepad-fr/focusdash/internal/store"
	"github.com/Makepad-fr/focusdash/internal/timer"
	"github.com/Makepad-fr/focusdash/internal/ui"
)

// CLI is the root command. Global flags override the config file and the
// environment.
type CLI struct {
	Config  string `short:"c" help:"Configuration file path (default: ./dash.yaml when present)"`
	Backend string `short:"b" help:"Storage backend: json, sqlite or memory"`
	Data    string `short:"d" help:"Data file path for the json or sqlite backend"`
	Theme   string `help:"Colour theme: classic, neon or mono"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Task    TaskCmd    `cmd:"" help:"Manage tasks"`
	Project ProjectCmd `cmd:"" help:"Manage projects"`
	Dash    DashCmd    `cmd:"" help:"Show dashboard counters and today's focus tasks"`
	Timer   TimerCmd   `cmd:"" help:"Run a focus countdown in the terminal"`
	Clear   ClearCmd   `cmd:"" help:"Clear all tasks, projects and timer sessions"`
	TUI     TUICmd     `cmd:"" default:"1" help:"Open the interactive dashboard (default)"`
}

// Env carries the process surroundings so commands can be run in tests.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Clock  clockwork.Clock // nil: real clock
	Ctx    context.Context // nil: context.Background()
}

// Global is what every command's Run receives.
type Global struct {
	Ctx    context.Context
	Config *config.Config
	Log    *slog.Logger
	Medium store.Medium
	Store  *record.Store
	Clock  clockwork.Clock

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	closers []io.Closer
}

// NewTimer builds a focus timer bound to the store's session counter.
func (g *Global) NewTimer() *timer.Timer {
	return timer.New(
		timer.WithDurations(g.Config.WorkDuration(), g.Config.BreakDuration()),
		timer.WithSessionStore(g.Store),
		timer.WithSessions(g.Store.Sessions(g.Ctx)),
		timer.WithLogger(g.Log),
	)
}

func (g *Global) Close() {
	for i := len(g.closers) - 1; i >= 0; i-- {
		_ = g.closers[i].Close()
	}
}

// usageError marks failures caused by bad arguments (exit code 2).
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, a ...any) error { return usageError{fmt.Sprintf(format, a...)} }

// Run parses args, dispatches the command and returns an exit code
// (0 ok, 1 error, 2 usage or invalid input).
func Run(args []string, env Env) int {
	if env.Ctx == nil {
		env.Ctx = context.Background()
	}
	if env.Clock == nil {
		env.Clock = clockwork.NewRealClock()
	}

	var root CLI
	exited, exitCode := false, 0
	parser, err := kong.New(&root,
		kong.Name("dash"),
		kong.Description("A terminal productivity dashboard: tasks, projects and a focus timer."),
		kong.Writers(env.Stdout, env.Stderr),
		kong.Exit(func(code int) { exited, exitCode = true, code }),
	)
	if err != nil {
		ui.Fail(env.Stderr, "cli: "+err.Error())
		return 1
	}
	kctx, err := parser.Parse(args)
	if exited {
		return exitCode
	}
	if err != nil {
		ui.Fail(env.Stderr, err.Error())
		ui.Hint(env.Stderr, "Hint: run `dash --help` for usage")
		return 2
	}

	interactive := strings.HasPrefix(kctx.Command(), "tui")
	g, err := setup(root, env, interactive)
	if err != nil {
		ui.Fail(env.Stderr, err.Error())
		return 1
	}
	defer g.Close()

	if err := kctx.Run(g); err != nil {
		ui.Fail(env.Stderr, err.Error())
		return exitCodeFor(err)
	}
	return 0
}

func exitCodeFor(err error) int {
	var ue usageError
	switch {
	case errors.As(err, &ue),
		errors.Is(err, record.ErrInvalidInput),
		errors.Is(err, record.ErrNotFound):
		return 2
	}
	return 1
}

func setup(root CLI, env Env, interactive bool) (*Global, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	if root.Backend != "" {
		cfg.Storage.Backend = strings.ToLower(root.Backend)
	}
	if root.Data != "" {
		cfg.Storage.Path = root.Data
	}
	if root.Theme != "" {
		cfg.UI.Theme = strings.ToLower(root.Theme)
	}
	if root.Verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ui.SetTheme(cfg.UI.Theme)

	g := &Global{
		Ctx:    env.Ctx,
		Config: cfg,
		Clock:  env.Clock,
		Stdin:  env.Stdin,
		Stdout: env.Stdout,
		Stderr: env.Stderr,
	}

	// The TUI owns the terminal: log to a file or nowhere.
	logOut := env.Stderr
	if interactive {
		logOut = io.Discard
	}
	log, closer, err := logging.New(logOut, logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return nil, err
	}
	g.closers = append(g.closers, closer)
	g.Log = log
	slog.SetDefault(log)

	m, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path, log)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	g.closers = append(g.closers, m)
	g.Medium = m
	g.Store = record.New(m, record.WithClock(env.Clock), record.WithLogger(log))
	log.Debug("Storage ready", logging.Backend(cfg.Storage.Backend), logging.Path(cfg.Storage.Path))
	return g, nil
}
