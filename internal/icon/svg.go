package icon

import (
	"fmt"
	"strings"
)

// SVG returns a standalone SVG document of the icon with a size×size
// viewBox. The output is deterministic for a given size.
func SVG(size int) string {
	l := NewLayout(size)
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		size, size, size, size)
	writeRect(&b, l.Frame, l.FrameRadius, Background)
	writeRect(&b, l.Card, l.CardRadius, Card)
	for _, r := range l.Bars {
		writeRect(&b, r, 0, Background)
	}

	b.WriteString(`  <path d="`)
	for i, p := range l.Arrow {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&b, "%s%s %s ", cmd, num(p.X), num(p.Y))
	}
	fmt.Fprintf(&b, `Z"%s/>`+"\n", paint(Marker))

	b.WriteString("</svg>\n")
	return b.String()
}

func writeRect(b *strings.Builder, r Rect, radius float64, c RGBA) {
	fmt.Fprintf(b, `  <rect x="%s" y="%s" width="%s" height="%s"`, num(r.X), num(r.Y), num(r.W), num(r.H))
	if radius > 0 {
		fmt.Fprintf(b, ` rx="%s" ry="%s"`, num(radius), num(radius))
	}
	fmt.Fprintf(b, "%s/>\n", paint(c))
}

// paint renders fill attributes; fill-opacity is omitted when opaque.
func paint(c RGBA) string {
	s := fmt.Sprintf(` fill="%s"`, Hex(c))
	if c.A < 1 {
		s += fmt.Sprintf(` fill-opacity="%s"`, num(c.A))
	}
	return s
}

// Hex formats the colour as #rrggbb, ignoring alpha.
func Hex(c RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// num prints a coordinate with at most three decimals and no trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" || s == "-0" {
		return "0"
	}
	return s
}
