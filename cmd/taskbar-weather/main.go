package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/five82/taskbar-weather/internal/app"
	"github.com/five82/taskbar-weather/internal/location"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("taskbar-weather", flag.ContinueOnError)
	fs.SortFlags = false

	headless := fs.Bool("headless", false, "print the weather periodically to stdout instead of showing the overlay")
	oneShot := fs.BoolP("oneshot", "o", false, "fetch once, print the weather and exit")
	city := fs.String("city", "", "city to report on (overrides environment and config file)")
	country := fs.String("country", "", "country code, e.g. FI (overrides environment and config file)")
	configPath := fs.String("config", "", "config file path (optional)")
	prefsPath := fs.String("prefs", "", "overlay prefs file path (optional)")
	showVersion := fs.Bool("version", false, "print the version and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: taskbar-weather [flags]\n\nA tiny weather overlay for the taskbar.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Printf("taskbar-weather %s\n", version)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Headless:   *headless,
		OneShot:    *oneShot,
		City:       location.Value(*city),
		Country:    location.Value(*country),
	}

	if err := app.Run(ctx, opts); err != nil {
		if !app.IsReported(err) {
			fmt.Fprintf(os.Stderr, "taskbar-weather: %v\n", err)
		}
		return 1
	}
	return 0
}
