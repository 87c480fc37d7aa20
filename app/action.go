package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/avocado/engine"
	"github.com/ayoisaiah/avocado/internal/config"
	"github.com/ayoisaiah/avocado/internal/pathutil"
	"github.com/ayoisaiah/avocado/internal/ui"
	"github.com/ayoisaiah/avocado/store"
	"github.com/ayoisaiah/avocado/timer"
)

const (
	envNoColor        = "NO_COLOR"
	envAvocadoNoColor = "AVOCADO_NO_COLOR"
)

var (
	cfg       *config.Config
	logWriter io.WriteCloser
)

// newEngine returns an engine bound to the configured session files.
func newEngine() *engine.Engine {
	return engine.New(
		store.New(cfg.Files.Current),
		store.NewHistory(cfg.Files.History),
		engine.WithLogger(slog.Default()),
	)
}

// commandAction returns the action for a named command.
func commandAction(cmd engine.Command) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		return run(ctx, cmd, ctx.Args().Slice())
	}
}

// defaultAction handles invocations that do not name a command exactly as
// registered, such as an empty command line or "START".
func defaultAction(ctx *cli.Context) error {
	cmd, err := engine.Resolve(ctx.Args().First())
	if err != nil {
		return err
	}

	return run(ctx, cmd, ctx.Args().Tail())
}

func run(ctx *cli.Context, cmd engine.Command, args []string) error {
	e := newEngine()

	slog.Debug("running command", slog.String("command", string(cmd)))

	if cmd == engine.Watch {
		return watch(e)
	}

	res, err := e.Run(cmd, args)
	if err != nil {
		return err
	}

	printResult(ctx.App.Writer, res)

	return nil
}

// watch follows the running session in the terminal.
func watch(e *engine.Engine) error {
	res, err := e.Watch()
	if err != nil {
		return err
	}

	return timer.New(e, cfg, res).Run()
}

func printResult(w io.Writer, res *engine.Result) {
	switch res.Command {
	case engine.Start, engine.Stop:
		fmt.Fprint(w, pterm.Success.Sprintln(res.Output))
	case engine.Status:
		if res.Session != nil && !res.Session.Done() {
			fmt.Fprintln(w, ui.Green(res.Output))
			return
		}

		fmt.Fprintln(w, ui.Yellow(res.Output))
	case engine.History, engine.Watch:
		fmt.Fprint(w, res.Output)
	}
}

// setupLogging sends structured logs to a rotating file.
func setupLogging(c *config.Config) error {
	level, err := c.LogLevel()
	if err != nil {
		return err
	}

	lj := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
	}

	logWriter = lj

	handler := slog.NewJSONHandler(lj, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// unknown commands are rejected before any file is touched
	if first := ctx.Args().First(); first != "" && ctx.App.Command(first) == nil {
		if _, err := engine.Resolve(first); err != nil {
			return err
		}
	}

	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		ui.Disable()
	}

	// Disable colour output if AVOCADO_NO_COLOR is set
	if _, exists := os.LookupEnv(envAvocadoNoColor); exists {
		ui.Disable()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	c, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithDefaultPaths(
			pathutil.CurrentFilePath(),
			pathutil.HistoryFilePath(),
		),
	)
	if err != nil {
		return err
	}

	cfg = c

	ui.DarkTheme = cfg.Display.DarkTheme

	if err = setupLogging(cfg); err != nil {
		return err
	}

	slog.Debug("configuration loaded", slog.String("config", cfg.String()))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting avocado")

	if logWriter != nil {
		return logWriter.Close()
	}

	return nil
}
