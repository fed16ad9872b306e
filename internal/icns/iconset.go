package icns

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/Mavwarf/appicon/internal/iconset"
	"github.com/Mavwarf/appicon/internal/paths"
)

// ReadIconset loads every conventionally named PNG in dir as an element.
// Files outside the naming convention are ignored. Each image must be a
// PNG whose dimensions match its name. Elements are ordered by pixel size.
func ReadIconset(dir string) ([]Element, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading iconset: %w", err)
	}

	type sized struct {
		px int
		Element
	}
	var found []sized
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		nominal, scale, ok := iconset.ParseName(e.Name())
		if !ok {
			continue
		}
		typ, ok := iconset.OSType(nominal, scale)
		if !ok {
			return nil, fmt.Errorf("%s: no .icns slot for %dx%d@%dx", e.Name(), nominal, nominal, scale)
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		px := nominal * scale
		if cfg.Width != px || cfg.Height != px {
			return nil, fmt.Errorf("%s: image is %dx%d, want %dx%d", e.Name(), cfg.Width, cfg.Height, px, px)
		}
		found = append(found, sized{px, Element{Type: typ, Data: data}})
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("no icon images in %s", dir)
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].px < found[j].px })
	elems := make([]Element, len(found))
	for i, f := range found {
		elems[i] = f.Element
	}
	return elems, nil
}

// Packager builds the .icns container in-process. Used where iconutil is
// unavailable.
type Packager struct{}

// Package reads iconsetDir and writes outPath atomically. On error nothing
// is written.
func (Packager) Package(_ context.Context, iconsetDir, outPath string) error {
	elems, err := ReadIconset(iconsetDir)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, elems); err != nil {
		return err
	}
	if err := paths.AtomicWrite(outPath, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
