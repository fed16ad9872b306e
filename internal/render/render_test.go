package render

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}

func TestNativeRender(t *testing.T) {
	dir := t.TempDir()
	for _, size := range []int{16, 64, 512} {
		p := filepath.Join(dir, "icon.png")
		if err := (Native{}).Render(context.Background(), p, size); err != nil {
			t.Fatalf("Render(%d): %v", size, err)
		}
		w, h := decodeSize(t, p)
		if w != size || h != size {
			t.Errorf("Render(%d) wrote %dx%d", size, w, h)
		}
	}
}

func TestSVGRender(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icon.png")
	if err := (SVG{}).Render(context.Background(), p, 128); err != nil {
		t.Fatalf("Render: %v", err)
	}
	w, h := decodeSize(t, p)
	if w != 128 || h != 128 {
		t.Errorf("wrote %dx%d, want 128x128", w, h)
	}
}

func TestRasterizeSVGPixels(t *testing.T) {
	img, err := RasterizeSVG(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <rect x="0" y="0" width="10" height="5" fill="#0000ff"/>
</svg>`, 20)
	if err != nil {
		t.Fatalf("RasterizeSVG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("bounds = %v, want 20x20", b)
	}
	if _, _, b, a := img.At(10, 4).RGBA(); b>>8 < 250 || a>>8 < 250 {
		t.Errorf("top half pixel = (b=%d, a=%d), want opaque blue", b>>8, a>>8)
	}
	if _, _, _, a := img.At(10, 15).RGBA(); a != 0 {
		t.Errorf("bottom half alpha = %d, want 0", a)
	}
}

func TestRasterizeSVGBadDocument(t *testing.T) {
	if _, err := RasterizeSVG("<svg", 16); err == nil {
		t.Error("expected error for truncated document")
	}
}

func TestRenderRejectsNonPositiveSize(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icon.png")
	renderers := map[string]interface {
		Render(context.Context, string, int) error
	}{
		"native": Native{},
		"svg":    SVG{},
		"swift":  Swift{Interpreter: "definitely-not-a-real-interpreter"},
	}
	for name, r := range renderers {
		for _, size := range []int{0, -16} {
			if err := r.Render(context.Background(), p, size); err == nil {
				t.Errorf("%s.Render(size=%d) = nil, want error", name, size)
			}
		}
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Errorf("rejected render left a file behind: %v", err)
	}
}
