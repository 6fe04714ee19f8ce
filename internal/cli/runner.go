package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/idilsaglam/schoolmeal/internal/config"
	"github.com/idilsaglam/schoolmeal/internal/meal"
	"github.com/idilsaglam/schoolmeal/internal/neis"
	"github.com/idilsaglam/schoolmeal/internal/tui"
	"github.com/idilsaglam/schoolmeal/internal/ui"
)

// Options carry the resolved configuration and I/O into Run.
type Options struct {
	Config config.Config
	Logger *slog.Logger
	Client neis.Client // built from Config when nil
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time
}

type app struct {
	Options
	out, errs ui.Theme
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	a := newApp(opt)
	if len(args) == 0 {
		if isatty.IsTerminal(os.Stdout.Fd()) && opt.Stdout == nil {
			return a.doTUI("")
		}
		return a.doShow("")
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(a.Stdout)
		return 0

	case "show", "tui", "url":
		if len(rest) > 1 {
			a.errs.Fail(a.Stderr, fmt.Sprintf("usage: meal %s [YYYY-MM-DD]", cmd))
			return 2
		}
		date := ""
		if len(rest) == 1 {
			date = rest[0]
		}
		switch cmd {
		case "show":
			return a.doShow(date)
		case "tui":
			return a.doTUI(date)
		}
		return a.doURL(date)

	case "config":
		if len(rest) == 0 {
			a.errs.Fail(a.Stderr, "usage: meal config <show|set <key> <value>>")
			return 2
		}
		switch rest[0] {
		case "show":
			return a.doConfigShow()
		case "set":
			if len(rest) != 3 {
				a.errs.Fail(a.Stderr, "usage: meal config set <key> <value>")
				return 2
			}
			return a.doConfigSet(rest[1], rest[2])
		}
		a.errs.Fail(a.Stderr, "usage: meal config <show|set <key> <value>>")
		return 2
	}

	a.errs.Fail(a.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(a.Stderr)
	PrintHelp(a.Stderr)
	return 2
}

func newApp(opt Options) *app {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opt.Client == nil {
		hc := &http.Client{Timeout: opt.Config.Timeout}
		opt.Client = neis.New(opt.Config.BaseURL, hc, opt.Logger)
	}
	return &app{
		Options: opt,
		out:     ui.NewTheme(opt.Config.Theme, opt.Stdout),
		errs:    ui.NewTheme(opt.Config.Theme, opt.Stderr),
	}
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `meal - school meal lookup

Usage:
  meal [flags] [subcommand] [args]

Subcommands:
  show [YYYY-MM-DD]          Print the meal for a date (default today)
  tui [YYYY-MM-DD]           Interactive lookup screen
  url [YYYY-MM-DD]           Print the API request URL
  config show                Print the resolved configuration
  config set <key> <value>   Save a setting (keys: %s)

Flags:
  -school, -office, -base, -theme, -timeout, -log

Examples:
  meal show 2024-03-15
  meal -school 7530079 -office J10 tui
  meal config set theme neon
`, strings.Join(config.Keys, ", "))
}

// -------------- subcommand impls ----------------

func (a *app) date(arg string) string {
	if arg == "" {
		return a.Now().Format("2006-01-02")
	}
	return arg
}

func (a *app) lookupContext() (context.Context, context.CancelFunc) {
	timeout := a.Config.Timeout
	if timeout <= 0 {
		timeout = config.Default().Timeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (a *app) doShow(arg string) int {
	date := a.date(arg)
	q, err := meal.NewQuery(a.Config.SchoolCode, a.Config.OfficeCode, date)
	if err != nil {
		a.errs.Fail(a.Stderr, ui.Message(err))
		return 2
	}
	ctx, cancel := a.lookupContext()
	defer cancel()
	d, err := a.Client.Lookup(ctx, q)
	if err != nil {
		a.Logger.Error("meal lookup failed", "date", q.Date, "error", err)
		a.errs.Fail(a.Stderr, ui.Message(err))
		return 1
	}
	v, err := meal.NewView(d, q.ISODate())
	if err != nil {
		a.errs.Fail(a.Stderr, ui.Message(err))
		return 1
	}
	a.out.PrintMeal(a.Stdout, v)
	return 0
}

func (a *app) doTUI(arg string) int {
	err := tui.Run(a.Client, tui.Options{
		SchoolCode: a.Config.SchoolCode,
		OfficeCode: a.Config.OfficeCode,
		Timeout:    a.Config.Timeout,
		Theme:      ui.NewTheme(a.Config.Theme, os.Stdout),
		Date:       arg,
		Now:        a.Now,
	})
	if err != nil {
		a.errs.Fail(a.Stderr, "tui: "+err.Error())
		return 1
	}
	return 0
}

func (a *app) doURL(arg string) int {
	q, err := meal.NewQuery(a.Config.SchoolCode, a.Config.OfficeCode, a.date(arg))
	if err != nil {
		a.errs.Fail(a.Stderr, ui.Message(err))
		return 2
	}
	fmt.Fprintln(a.Stdout, neis.BuildURL(a.Config.BaseURL, q))
	return 0
}

func (a *app) doConfigShow() int {
	p, err := config.Path()
	if err != nil {
		a.errs.Fail(a.Stderr, "config: "+err.Error())
		return 1
	}
	lines := []string{a.out.Muted.Render(p), ""}
	for _, k := range config.Keys {
		lines = append(lines, fmt.Sprintf("%s  %s", a.out.Label.Render(fmt.Sprintf("%-7s", k)), a.Config.Get(k)))
	}
	fmt.Fprintln(a.Stdout, a.out.Panel(strings.Join(lines, "\n")))
	return 0
}

// doConfigSet edits the file's own values, so env and flags are not persisted.
func (a *app) doConfigSet(key, value string) int {
	stored, err := config.LoadFile()
	if err != nil {
		a.errs.Fail(a.Stderr, "load: "+err.Error())
		return 1
	}
	if err := stored.Set(key, value); err != nil {
		a.errs.Fail(a.Stderr, "set: "+err.Error())
		return 2
	}
	if err := config.Save(stored); err != nil {
		a.errs.Fail(a.Stderr, "save: "+err.Error())
		return 1
	}
	a.out.OK(a.Stdout, fmt.Sprintf("%s = %s", key, stored.Get(key)))
	return 0
}
