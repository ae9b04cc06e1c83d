package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"termbreak/internal/breakpoint"
	"termbreak/internal/config"
	"termbreak/internal/telemetry"
	"termbreak/internal/ui"
	"termbreak/internal/viewport"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// cliConfig holds the parsed CLI configuration.
type cliConfig struct {
	configPath        string
	preset            string
	defaultBreakpoint string
	guard             bool
	guardSet          bool
	watch             bool
	tmux              bool
	fps               int
	verbose           bool
}

func parseFlags(args []string) (cliConfig, error) {
	var cfg cliConfig
	fs := flag.NewFlagSet("termbreak", flag.ContinueOnError)

	fs.StringVar(&cfg.configPath, "config", "", "YAML breakpoint config (default $"+config.EnvPath+")")
	fs.StringVar(&cfg.preset, "preset", "web", "built-in breakpoints: web (pixel defaults) or terminal (columns)")
	fs.StringVar(&cfg.defaultBreakpoint, "default", "", "label used when there is no terminal to measure")
	fs.BoolVar(&cfg.guard, "guard", true, "report false from every comparison until the width is measured")
	fs.BoolVar(&cfg.watch, "watch", false, "print breakpoint changes instead of running the inspector")
	fs.BoolVar(&cfg.tmux, "tmux", false, "measure the current tmux pane (with -watch)")
	fs.IntVar(&cfg.fps, "fps", viewport.DefaultFPS, "refresh rate resize notifications are coalesced to")
	fs.BoolVar(&cfg.verbose, "verbose", false, "enable detailed logging to stderr")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: termbreak [flags]\n\n")
		fmt.Fprintf(fs.Output(), "termbreak resolves the named width breakpoint of the current terminal\n")
		fmt.Fprintf(fs.Output(), "and shows how every comparison helper evaluates against it.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "guard" {
			cfg.guardSet = true
		}
	})
	if cfg.preset != "web" && cfg.preset != "terminal" {
		return cfg, fmt.Errorf("unknown preset %q (want web or terminal)", cfg.preset)
	}
	if cfg.tmux && !cfg.watch {
		return cfg, errors.New("-tmux requires -watch")
	}
	return cfg, nil
}

// options layers preset, config file and flags, in that order, and rejects
// a combination whose default label is missing from the mapping.
func (c cliConfig) options(path string) (breakpoint.Options, error) {
	var opts breakpoint.Options
	if c.preset == "terminal" {
		opts.Breakpoints = breakpoint.TerminalBreakpoints()
		opts.DefaultBreakpoint = "standard"
	}
	if path != "" {
		fileOpts, err := config.Load(path)
		if err != nil {
			return breakpoint.Options{}, err
		}
		opts = opts.Merge(fileOpts)
	}
	flagOpts := breakpoint.Options{DefaultBreakpoint: c.defaultBreakpoint}
	if c.guardSet {
		flagOpts.GuardSSR = breakpoint.Bool(c.guard)
	}
	opts = opts.Merge(flagOpts)
	if err := config.ValidateConfig(opts.Resolve()); err != nil {
		return breakpoint.Options{}, err
	}
	return opts, nil
}

func newLogger(verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "termbreak: ", log.LstdFlags)
}

// app carries what both modes share.
type app struct {
	cfg    cliConfig
	path   string
	tracer *telemetry.Tracer
	logger *log.Logger
	stdout io.Writer
}

func run(ctx context.Context, cfg cliConfig, stdout io.Writer) error {
	a := &app{
		cfg:    cfg,
		path:   config.Path(cfg.configPath),
		logger: newLogger(cfg.verbose),
		stdout: stdout,
	}

	opts, err := cfg.options(a.path)
	if err != nil {
		return err
	}
	ctx = breakpoint.Provide(ctx, opts)
	a.logger.Printf("config: path=%q preset=%s fps=%d", a.path, cfg.preset, cfg.fps)

	a.tracer, err = telemetry.New(ctx)
	if err != nil {
		a.logger.Printf("telemetry: disabled: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			a.logger.Printf("telemetry: shutdown: %v", err)
		}
	}()

	if !cfg.watch {
		return a.runInspector(ctx)
	}
	surface, err := a.watchSurface()
	if err != nil {
		return err
	}
	return a.runWatch(ctx, surface)
}

// reloader returns a config.Watch callback that recomposes the full Config
// from the reloaded file and the CLI flags.
func (a *app) reloader(fn func(breakpoint.Config, error)) func(breakpoint.Options, error) {
	return func(_ breakpoint.Options, err error) {
		if err != nil {
			fn(breakpoint.Config{}, err)
			return
		}
		opts, err := a.cfg.options(a.path)
		fn(opts.Resolve(), err)
	}
}

func (a *app) runInspector(ctx context.Context) error {
	model, err := ui.NewModel(ctx, ui.Options{FPS: a.cfg.fps, Tracer: a.tracer})
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if a.path != "" {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			err := config.Watch(watchCtx, a.path, config.WatchOptions{}, a.reloader(func(c breakpoint.Config, err error) {
				p.Send(ui.ConfigMsg{Path: a.path, Config: c, Err: err})
			}))
			if err != nil {
				a.logger.Printf("config: watch stopped: %v", err)
			}
		}()
	}

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// watchSurface picks the surface for -watch. A nil surface means stdout is
// not a terminal.
func (a *app) watchSurface() (viewport.Surface, error) {
	if a.cfg.tmux {
		pane, err := viewport.NewTmuxPane("")
		if err != nil {
			return nil, err
		}
		return pane, nil
	}
	return viewport.DetectTerminal(os.Stdout), nil
}

func (a *app) runWatch(ctx context.Context, surface viewport.Surface) error {
	obs := viewport.NewObserver(surface,
		viewport.WithScheduler(viewport.NewFrameScheduler(a.cfg.fps)),
		viewport.WithLogger(a.logger),
	)
	tracker, err := breakpoint.NewTracker(ctx, obs)
	if err != nil {
		return err
	}
	defer tracker.Close()

	if !obs.Measurable() {
		// Nothing to observe: report the fallback label once.
		fmt.Fprintln(a.stdout, tracker.Resolver().Current())
		return nil
	}

	tracker.OnChange(func(from, to string) {
		r := tracker.Resolver()
		fmt.Fprintf(a.stdout, "%s -> %s (width %d)\n", from, to, r.Width())
		a.tracer.RecordTransition(ctx, from, to, r)
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := obs.Start(ctx); err != nil {
			return err
		}
		r := tracker.Resolver()
		fmt.Fprintf(a.stdout, "%s (width %d)\n", r.Current(), r.Width())
		<-ctx.Done()
		obs.Stop()
		return nil
	})
	if a.path != "" {
		g.Go(func() error {
			return config.Watch(ctx, a.path, config.WatchOptions{}, a.reloader(func(c breakpoint.Config, err error) {
				a.tracer.RecordReload(ctx, a.path, c, err)
				if err != nil {
					a.logger.Printf("config: reload rejected, keeping previous config: %v", err)
					return
				}
				tracker.Reconfigure(c)
				a.logger.Printf("config: reloaded %s", a.path)
			}))
		})
	}
	return g.Wait()
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "termbreak: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "termbreak: %v\n", err)
		os.Exit(1)
	}
}
