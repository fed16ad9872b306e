package icon

import (
	"image"
	"io"

	"github.com/fogleman/gg"
)

// Draw renders the icon into a size×size image.
func Draw(size int) image.Image {
	return newContext(size).Image()
}

// EncodePNG renders the icon and writes it to w as PNG.
func EncodePNG(w io.Writer, size int) error {
	return newContext(size).EncodePNG(w)
}

func newContext(size int) *gg.Context {
	l := NewLayout(size)
	dc := gg.NewContext(size, size)

	fill := func(c RGBA) {
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		dc.Fill()
	}

	dc.DrawRoundedRectangle(l.Frame.X, l.Frame.Y, l.Frame.W, l.Frame.H, l.FrameRadius)
	fill(Background)

	dc.DrawRoundedRectangle(l.Card.X, l.Card.Y, l.Card.W, l.Card.H, l.CardRadius)
	fill(Card)

	for _, b := range l.Bars {
		dc.DrawRectangle(b.X, b.Y, b.W, b.H)
	}
	fill(Background)

	dc.MoveTo(l.Arrow[0].X, l.Arrow[0].Y)
	for _, p := range l.Arrow[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	fill(Marker)

	return dc
}
