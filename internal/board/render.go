package board

// ShapeKind identifies a static board element.
type ShapeKind int

const (
	ShapeSquare ShapeKind = iota
	ShapeLine
	ShapeCircle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSquare:
		return "square"
	case ShapeLine:
		return "line"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Shape describes one element of the static board. Square uses From as its
// top-left corner and Size as its side; Line runs From to To; Circle uses From
// as its center and Size as its radius.
type Shape struct {
	Kind ShapeKind
	From Point
	To   Point
	Size float64
}

// Color is the marker color family.
type Color int

const (
	ColorHit Color = iota
	ColorMiss
	ColorPlayer
)

func (c Color) String() string {
	switch c {
	case ColorHit:
		return "green"
	case ColorMiss:
		return "red"
	case ColorPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Marker is what gets placed where a dart lands.
type Marker struct {
	Color Color
	Label string
}

// HitMarker returns the standard marker for a dart classified as hit or miss.
func HitMarker(hit bool) Marker {
	if hit {
		return Marker{Color: ColorHit}
	}
	return Marker{Color: ColorMiss}
}

// Renderer draws the board and the darts. Calls are fire-and-forget; the
// scoring code never reads anything back.
type Renderer interface {
	DrawShape(s Shape)
	PlaceMarker(x, y float64, m Marker)
}

// DrawBoard draws the outline square, both axes and the target circle.
func DrawBoard(r Renderer, region Region, target Circle) {
	if r == nil {
		return
	}
	min, max := region.Min(), region.Max()
	r.DrawShape(Shape{Kind: ShapeSquare, From: Point{X: min.X, Y: max.Y}, Size: region.Width()})
	r.DrawShape(Shape{Kind: ShapeLine, From: Point{X: min.X, Y: region.Center.Y}, To: Point{X: max.X, Y: region.Center.Y}})
	r.DrawShape(Shape{Kind: ShapeLine, From: Point{X: region.Center.X, Y: min.Y}, To: Point{X: region.Center.X, Y: max.Y}})
	r.DrawShape(Shape{Kind: ShapeCircle, From: target.Center, Size: target.Radius})
}

// Discard is a Renderer that draws nothing.
var Discard Renderer = discard{}

type discard struct{}

func (discard) DrawShape(Shape) {}
func (discard) PlaceMarker(float64, float64, Marker) {}

// Recording keeps every call it receives, in order.
type Recording struct {
	Shapes  []Shape
	Markers []PlacedMarker
}

// PlacedMarker is a marker with the coordinates it was placed at.
type PlacedMarker struct {
	At     Point
	Marker Marker
}

func (r *Recording) DrawShape(s Shape) {
	r.Shapes = append(r.Shapes, s)
}

func (r *Recording) PlaceMarker(x, y float64, m Marker) {
	r.Markers = append(r.Markers, PlacedMarker{At: Point{X: x, Y: y}, Marker: m})
}

// Reset forgets everything recorded so far.
func (r *Recording) Reset() {
	r.Shapes = nil
	r.Markers = nil
}
