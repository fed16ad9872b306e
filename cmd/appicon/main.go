package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/Mavwarf/appicon/internal/config"
	"github.com/Mavwarf/appicon/internal/generator"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// options are command-line overrides; empty fields keep the config value.
type options struct {
	configPath string
	renderer   string
	packager   string
	ico        string
	svg        string
}

func main() {
	opts, command, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'appicon help' for usage.\n")
		os.Exit(1)
	}

	switch command {
	case "help":
		printUsage()
		return
	case "version":
		printVersion()
		return
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs returns the overrides and "help", "version" or "" (generate).
func parseArgs(args []string) (options, string, error) {
	var opts options
	command := ""

	value := func(i int, flag, what string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires %s", flag, what)
		}
		return args[i+1], nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		switch args[i] {
		case "--config", "-c":
			opts.configPath, err = value(i, args[i], "a file path")
			i++
		case "--renderer", "-r":
			opts.renderer, err = value(i, args[i], "a name (native, svg, swift)")
			i++
		case "--packager", "-p":
			opts.packager, err = value(i, args[i], "a name (auto, iconutil, native)")
			i++
		case "--ico":
			opts.ico, err = value(i, args[i], "a file path")
			i++
		case "--svg":
			opts.svg, err = value(i, args[i], "a file path")
			i++
		case "help", "-h", "--help":
			command = "help"
		case "version", "-V", "--version":
			command = "version"
		default:
			return options{}, "", fmt.Errorf("unexpected argument %q", args[i])
		}
		if err != nil {
			return options{}, "", err
		}
	}
	return opts, command, nil
}

// applyOverrides copies non-empty CLI values onto cfg.
func applyOverrides(cfg *config.Config, opts options) {
	if opts.renderer != "" {
		cfg.Renderer = opts.renderer
	}
	if opts.packager != "" {
		cfg.Packager = opts.packager
	}
	if opts.ico != "" {
		cfg.ICOPath = opts.ico
	}
	if opts.svg != "" {
		cfg.SVGPath = opts.svg
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyOverrides(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	r, err := generator.NewRenderer(cfg)
	if err != nil {
		return err
	}
	p, err := generator.NewPackager(cfg)
	if err != nil {
		return err
	}
	return generator.New(r, p, out).Run(ctx, cfg)
}

func printVersion() {
	fmt.Printf("appicon %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("appicon %s - Generate a macOS app icon set and .icns bundle\n", version)
	fmt.Println(`
Usage:
  appicon [options]

Options:
  --config, -c <path>      JSON config overriding paths, sizes and backends
  --renderer, -r <name>    native (default), svg, or swift
  --packager, -p <name>    auto (default), iconutil, or native
  --ico <path>             Also write a 256x256 Windows .ico
  --svg <path>             Also write the SVG master

Commands:
  version, -V              Show version and build date
  help, -h, --help         Show this help message

Defaults:
  iconset   build/AppIcon.iconset
  bundle    Resources/AppIcon.icns

Examples:
  appicon                          Render all sizes and build the .icns
  appicon -r swift -p iconutil     Render through swift, package with iconutil
  appicon --ico build/AppIcon.ico  Also emit a Windows icon`)
}
