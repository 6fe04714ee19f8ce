package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/idilsaglam/schoolmeal/internal/cli"
	"github.com/idilsaglam/schoolmeal/internal/config"
)

func main() {
	// Root flags (apply to every subcommand)
	school := flag.String("school", "", "school code (SD_SCHUL_CODE)")
	office := flag.String("office", "", "education office code (ATPT_OFCDC_SC_CODE)")
	base := flag.String("base", "", "meal API base URL")
	theme := flag.String("theme", "", "classic, neon or mono")
	timeout := flag.Duration("timeout", 0, "request timeout")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log:", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		// Fall back to defaults so a broken file doesn't lock the user out.
		logger.Warn("config load failed", "error", err)
		fmt.Fprintln(os.Stderr, "config:", err)
	}
	cfg.Override(*base, *school, *office, *theme, *timeout)

	code := cli.Run(flag.Args(), cli.Options{
		Config: cfg,
		Logger: logger,
	})
	closeLog()
	os.Exit(code)
}

// The screen belongs to the TUI, so logs only go somewhere when asked.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { _ = f.Close() }, nil
}
