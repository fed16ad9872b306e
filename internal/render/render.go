// Package render turns an edge length into a PNG file on disk.
//
// Native and SVG draw in-process. Swift hands a generated drawing program to
// an external interpreter and waits for it to exit.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/Mavwarf/appicon/internal/icon"
	"github.com/Mavwarf/appicon/internal/paths"
)

func checkSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("edge length must be positive, got %d", size)
	}
	return nil
}

// Native draws the icon with gg and writes it atomically.
type Native struct{}

func (Native) Render(_ context.Context, path string, size int) error {
	if err := checkSize(size); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := icon.EncodePNG(&buf, size); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return paths.AtomicWrite(path, buf.Bytes())
}

// SVG rasterizes the icon's SVG document with oksvg.
type SVG struct{}

func (SVG) Render(_ context.Context, path string, size int) error {
	if err := checkSize(size); err != nil {
		return err
	}
	img, err := RasterizeSVG(icon.SVG(size), size)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return paths.AtomicWrite(path, buf.Bytes())
}

// RasterizeSVG parses doc and draws it scaled to a size×size image.
func RasterizeSVG(doc string, size int) (*image.RGBA, error) {
	ic, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	ic.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	dasher := rasterx.NewDasher(size, size, rasterx.NewScannerGV(size, size, img, img.Bounds()))
	ic.Draw(dasher, 1.0)
	return img, nil
}
