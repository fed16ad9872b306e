package generator

import (
	"fmt"

	"github.com/Mavwarf/appicon/internal/config"
	"github.com/Mavwarf/appicon/internal/icns"
	"github.com/Mavwarf/appicon/internal/iconutil"
	"github.com/Mavwarf/appicon/internal/render"
)

// NewRenderer returns the render backend named by cfg.Renderer.
func NewRenderer(cfg config.Config) (Renderer, error) {
	switch cfg.Renderer {
	case config.RendererNative, "":
		return render.Native{}, nil
	case config.RendererSVG:
		return render.SVG{}, nil
	case config.RendererSwift:
		return render.Swift{Interpreter: cfg.Interpreter}, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", cfg.Renderer)
	}
}

// NewPackager returns the packaging backend named by cfg.Packager.
// "auto" prefers iconutil and falls back to the native encoder.
func NewPackager(cfg config.Config) (Packager, error) {
	switch cfg.Packager {
	case config.PackagerAuto, "":
		if iconutil.Available() {
			return iconutil.Packager{}, nil
		}
		return icns.Packager{}, nil
	case config.PackagerIconutil:
		return iconutil.Packager{}, nil
	case config.PackagerNative:
		return icns.Packager{}, nil
	default:
		return nil, fmt.Errorf("unknown packager %q", cfg.Packager)
	}
}
