package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/Mavwarf/appicon/internal/config"
	"github.com/Mavwarf/appicon/internal/icon"
	"github.com/Mavwarf/appicon/internal/iconset"
	"github.com/Mavwarf/appicon/internal/paths"
	"github.com/Mavwarf/appicon/internal/winicon"
)

// SVGMasterSize is the viewBox edge of the exported SVG master.
const SVGMasterSize = 1024

// Renderer writes one square PNG of the given edge length to path.
type Renderer interface {
	Render(ctx context.Context, path string, size int) error
}

// Packager bundles a populated iconset directory into one .icns file.
type Packager interface {
	Package(ctx context.Context, iconsetDir, outPath string) error
}

// Generator runs the render-then-package pipeline. Steps run strictly one
// after another; the first error stops the run and nothing already written
// is removed.
type Generator struct {
	Renderer Renderer
	Packager Packager
	Out      io.Writer

	// Inline prints each item's prefix before rendering and "OK" after it
	// on the same line. Otherwise the prefix is printed as its own line
	// before rendering and a complete result line follows.
	Inline bool
}

// New returns a Generator reporting to out. Inline progress is enabled
// when out is a terminal.
func New(r Renderer, p Packager, out io.Writer) *Generator {
	return &Generator{Renderer: r, Packager: p, Out: out, Inline: isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run validates cfg, prepares directories, renders every size in order,
// packages the iconset and writes any requested extras.
func (g *Generator) Run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := paths.EnsureDirs(cfg.IconsetDir, filepath.Dir(cfg.OutputPath)); err != nil {
		return err
	}
	if err := paths.Writable(cfg.IconsetDir); err != nil {
		return err
	}

	for _, s := range cfg.Sizes {
		if err := g.render(ctx, cfg.IconsetDir, s); err != nil {
			return err
		}
	}

	fmt.Fprintln(g.Out, "Creating .icns...")
	// A bundle from an earlier run must not survive a failed packaging step.
	if err := os.Remove(cfg.OutputPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing stale %s: %w", cfg.OutputPath, err)
	}
	if err := g.Packager.Package(ctx, cfg.IconsetDir, cfg.OutputPath); err != nil {
		return fmt.Errorf("packaging %s: %w", cfg.OutputPath, err)
	}

	if cfg.ICOPath != "" {
		fmt.Fprintln(g.Out, "Creating .ico...")
		if err := winicon.Write(cfg.ICOPath, winicon.MaxSize); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.ICOPath, err)
		}
	}
	if cfg.SVGPath != "" {
		fmt.Fprintln(g.Out, "Creating .svg...")
		if err := paths.AtomicWrite(cfg.SVGPath, []byte(icon.SVG(SVGMasterSize))); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.SVGPath, err)
		}
	}

	fmt.Fprintf(g.Out, "Done: %s\n", cfg.OutputPath)
	return nil
}

func (g *Generator) render(ctx context.Context, dir string, s iconset.SizeSpec) error {
	prefix := fmt.Sprintf("  %s (%dx%d)...", s.Name, s.Pixels, s.Pixels)
	if g.Inline {
		fmt.Fprint(g.Out, prefix+" ")
	} else {
		fmt.Fprintln(g.Out, prefix)
	}

	err := g.Renderer.Render(ctx, filepath.Join(dir, s.Name), s.Pixels)

	status := "OK"
	if err != nil {
		status = "FAILED"
	}
	if g.Inline {
		fmt.Fprintln(g.Out, status)
	} else {
		fmt.Fprintln(g.Out, prefix, status)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	return nil
}
