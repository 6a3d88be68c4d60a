// wakeguard - keep the machine awake while it runs
//
// wakeguard repeatedly asserts the OS "stay awake" execution state so the
// system does not idle into sleep or the screensaver, and optionally nudges
// the mouse by one pixel each interval to defeat input-idle timers. It runs
// in the foreground until interrupted, then restores normal power
// management.
//
//	wakeguard                      # keep-awake assertion only
//	wakeguard --mouse              # also nudge the mouse every 60s
//	wakeguard --mouse --interval 30
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wakeguard/internal/config"
	"wakeguard/internal/input"
	"wakeguard/internal/keeper"
	"wakeguard/internal/logging"
	"wakeguard/internal/power"
)

// Version is the wakeguard release version.
const Version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("wakeguard", flag.ContinueOnError)
	fs.Usage = func() { usage(fs) }

	mouse := fs.Bool("mouse", false, "nudge the mouse every interval")
	interval := fs.Int("interval", config.DefaultIntervalSec, "seconds between keep-awake cycles")
	keepDisplay := fs.Bool("keep-display", config.DefaultKeepDisplay, "keep the display awake, not just the system")
	configPath := fs.String("config", "", "config file path (default: platform config dir)")
	logLevel := fs.String("log-level", "", "minimum log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "log format: text, json")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Println("wakeguard " + Version)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// CLI flags override the config file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mouse":
			cfg.Keeper.MouseNudge = *mouse
		case "interval":
			cfg.Keeper.IntervalSec = *interval
		case "keep-display":
			cfg.Keeper.KeepDisplay = *keepDisplay
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-format":
			cfg.Logging.Format = *logFormat
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Close()

	assertor := power.New(power.Options{
		KeepDisplay: cfg.Keeper.KeepDisplay,
		Reason:      "wakeguard keep-awake",
	})

	var nudger input.Nudger
	if cfg.Keeper.MouseNudge {
		nudger = input.New()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		fmt.Println()
		fmt.Println("Restoring normal sleep settings...")
		cancel()
	}()

	k := keeper.New(assertor, nudger, keeper.Options{
		Interval:   cfg.Keeper.Interval(),
		MouseNudge: cfg.Keeper.MouseNudge,
		OnStart: func() {
			fmt.Println("Keep-awake active. Press Ctrl+C to stop.")
			if cfg.Keeper.MouseNudge {
				fmt.Printf("Mouse nudge enabled every %ds.\n", cfg.Keeper.IntervalSec)
			}
		},
	}, log)

	if err := k.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newLogger builds the process logger from the logging config section.
func newLogger(cfg config.LoggingConfig) (*logging.Logger, error) {
	logCfg := logging.DefaultConfig()

	if cfg.Level != "" {
		level, err := logging.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		logCfg.Level = level
	}

	format, err := logging.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	logCfg.Format = format

	if cfg.Output != "" {
		logCfg.Output = cfg.Output
	}
	if cfg.FilePath != "" {
		logCfg.FilePath = cfg.FilePath
	}

	log, err := logging.New(logCfg)
	if err != nil {
		return nil, err
	}
	logging.SetDefault(log)
	return log, nil
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(fs.Output(), `wakeguard - keep the machine awake while it runs

USAGE:
    wakeguard [options]

OPTIONS:`)
	fs.PrintDefaults()
	fmt.Fprintln(fs.Output(), `
wakeguard asserts the OS keep-awake state once per interval and releases it
on exit (Ctrl+C or SIGTERM). With --mouse it also moves the pointer by one
pixel and back each interval, which defeats idle timers that only count
real input.`)
}
