package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/olehluchkiv/tripkit/internal/capability"
	"github.com/olehluchkiv/tripkit/internal/config"
	"github.com/olehluchkiv/tripkit/internal/logging"
	"github.com/olehluchkiv/tripkit/internal/observe"
	"github.com/olehluchkiv/tripkit/internal/scenario"
	"github.com/olehluchkiv/tripkit/internal/vehicle"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// errSink is implemented by sinks that swallow write errors.
type errSink interface {
	observe.Sink
	Err() error
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// A bad environment still allows -help and -list; anything else reports it
	// once flags are parsed.
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Defaults()
	}

	// Flags may follow scenario names: "tripkit cars -format json".
	flags, positional := reorderArgs(args)

	fs := flag.NewFlagSet("tripkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	list := fs.Bool("list", false, "list scenarios and exit")
	format := fs.String("format", cfg.Format, "event output format (text, json)")
	logLevel := fs.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	logFile := fs.String("log-file", cfg.LogFile, "also write logs to this file")
	diagramDir := fs.String("diagram", "", "print a Mermaid diagram of the capability interfaces under this directory")
	maxMethods := fs.Int("max-methods", cfg.DiagramMaxMethods, "methods shown per interface in -diagram output, 0 for all")
	vehicles := fs.String("vehicles", "", "prepare these vehicles instead of running scenarios, e.g. car:12,bicycle")
	light := fs.Bool("light", false, "use the light mechanic with -vehicles")

	if err := fs.Parse(flags); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	positional = append(positional, fs.Args()...)

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid log level %q: %v\n", *logLevel, err)
		return 1
	}
	logger, logCleanup, err := logging.Setup(*logFile, level)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to setup logging: %v\n", err)
		return 1
	}
	defer logCleanup()

	if *list {
		for _, s := range scenario.All() {
			fmt.Fprintf(stdout, "%-16s %s\n", s.Name, s.Description)
		}
		return 0
	}

	if cfgErr != nil {
		logger.Error("invalid environment", "error", cfgErr)
		fmt.Fprintf(stderr, "Error: %v\n", cfgErr)
		return 1
	}

	if *diagramDir != "" {
		cat, err := capability.Scan(ctx, *diagramDir, capability.ScanOptions{}, logger)
		if err != nil {
			logger.Error("scan failed", "dir", *diagramDir, "error", err)
			fmt.Fprintf(stderr, "Error scanning %s: %v\n", *diagramDir, err)
			return 1
		}
		fmt.Fprint(stdout, capability.Mermaid(cat, capability.DiagramOptions{MaxMethodsPerBox: *maxMethods}))
		for _, dd := range capability.DetectDoubleDispatch(cat) {
			fmt.Fprintf(stdout, "%%%% double dispatch: %s.%s(%s) -> %s\n",
				dd.Element, dd.Accept, dd.Visitor, strings.Join(dd.Variants, ", "))
		}
		return 0
	}

	sink, err := newSink(*format, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	events := observe.Tee(sink, observe.NewLogSink(logger))

	if *vehicles != "" {
		riders, err := vehicle.ParseList(*vehicles)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		logger.Info("preparing vehicles", "count", len(riders), "light", *light)
		scenario.RunTrip(riders, *light, events, logger)
		return finish(sink, stderr)
	}

	selected, err := scenario.Select(positional)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v (available: %s)\n", err, strings.Join(scenario.Names(), ", "))
		return 1
	}
	for _, s := range selected {
		if ctx.Err() != nil {
			logger.Info("interrupted", "next", s.Name)
			break
		}
		logger.Info("running scenario", "scenario", s.Name)
		s.Run(events, logger)
	}
	return finish(sink, stderr)
}

func newSink(format string, w io.Writer) (errSink, error) {
	switch format {
	case config.FormatText:
		return observe.NewTextSink(w), nil
	case config.FormatJSON:
		return observe.NewJSONSink(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q (valid: text, json)", format)
	}
}

func finish(sink errSink, stderr io.Writer) int {
	if err := sink.Err(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// reorderArgs separates flags and positional arguments so flags can appear
// in any position. Flags that take a value (e.g., -format json) consume the
// next arg.
func reorderArgs(args []string) (flags, positional []string) {
	valueFlagSet := map[string]bool{
		"-format": true, "-log-level": true, "-log-file": true,
		"-diagram": true, "-max-methods": true, "-vehicles": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			name := "-" + strings.TrimLeft(arg, "-")
			if !strings.Contains(arg, "=") && valueFlagSet[name] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}

