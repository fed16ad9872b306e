// Package icon draws the application icon at any edge length.
//
// All geometry is proportional to the edge length and uses a top-left
// origin, so the same Layout feeds the raster renderer and the SVG writer.
package icon

// Colour components in 0..1.
type RGBA struct {
	R, G, B, A float64
}

var (
	Background = RGBA{0.16, 0.47, 1.0, 1.0}
	Card       = RGBA{1, 1, 1, 0.95}
	Marker     = RGBA{1, 1, 1, 0.9}
)

type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

// Layout is the resolved geometry for one edge length.
type Layout struct {
	Size float64

	Frame       Rect // rounded-square background
	FrameRadius float64

	Card       Rect
	CardRadius float64

	// Bars are the three accents hanging from the card's top edge.
	Bars [3]Rect

	// Arrow is the closed outline of the upward marker, tip first.
	Arrow [7]Point
}

// Proportions of the edge length.
const (
	frameInset  = 0.05
	frameRadius = 0.22

	cardWidth  = 0.52
	cardHeight = 0.46
	cardTop    = 0.34
	cardRadius = 0.03

	barWidth  = 0.06
	barHeight = 0.14
	barInset  = 0.03

	arrowTip   = 0.12
	arrowScale = 0.15
)

// barOffsets are the bar positions as fractions of the card width.
var barOffsets = [3]float64{0.18, 0.43, 0.65}

// NewLayout computes the geometry for a square canvas of edge length size.
func NewLayout(size int) Layout {
	s := float64(size)
	l := Layout{Size: s}

	inset := s * frameInset
	l.Frame = Rect{X: inset, Y: inset, W: s - inset*2, H: s - inset*2}
	l.FrameRadius = s * frameRadius

	cw, ch := s*cardWidth, s*cardHeight
	l.Card = Rect{X: (s - cw) / 2, Y: s * cardTop, W: cw, H: ch}
	l.CardRadius = s * cardRadius

	for i, off := range barOffsets {
		l.Bars[i] = Rect{
			X: l.Card.X + cw*off,
			Y: l.Card.Y + s*barInset,
			W: s * barWidth,
			H: s * barHeight,
		}
	}

	cx, tip, a := s*0.5, s*arrowTip, s*arrowScale
	l.Arrow = [7]Point{
		{cx, tip},
		{cx - a*0.7, tip + a*0.7},
		{cx - a*0.25, tip + a*0.7},
		{cx - a*0.25, tip + a*1.3},
		{cx + a*0.25, tip + a*1.3},
		{cx + a*0.25, tip + a*0.7},
		{cx + a*0.7, tip + a*0.7},
	}
	return l
}
