// Implements a rough, pattern based reading of
// svg path data, used to locate paths on the
// horizontal axis without a full path parser.
package svgpath

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Operation groups the supported SVG commands
type Operation interface {
	// end point of the operation
	point() fixed.Point26_6
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

func (op MoveTo) point() fixed.Point26_6 { return fixed.Point26_6(op) }
func (op LineTo) point() fixed.Point26_6 { return fixed.Point26_6(op) }

// Path describes a sequence of absolute move and line operations,
// as found by Commands.
type Path []Operation

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// Bounds returns the smallest rectangle containing every point of the path.
// The second return value is false for an empty path.
// Note that unlike fixed.Rectangle26_6.Union, degenerate
// boxes (a single point, an horizontal line) are kept.
func (p Path) Bounds() (fixed.Rectangle26_6, bool) {
	if len(p) == 0 {
		return fixed.Rectangle26_6{}, false
	}
	first := p[0].point()
	box := fixed.Rectangle26_6{Min: first, Max: first}
	for _, op := range p[1:] {
		box = extend(box, op.point())
	}
	return box, true
}

// UnionBounds merges two boxes returned by Bounds.
func UnionBounds(a, b fixed.Rectangle26_6) fixed.Rectangle26_6 {
	return extend(extend(a, b.Min), b.Max)
}

func extend(box fixed.Rectangle26_6, pt fixed.Point26_6) fixed.Rectangle26_6 {
	if pt.X < box.Min.X {
		box.Min.X = pt.X
	}
	if pt.Y < box.Min.Y {
		box.Min.Y = pt.Y
	}
	if pt.X > box.Max.X {
		box.Max.X = pt.X
	}
	if pt.Y > box.Max.Y {
		box.Max.Y = pt.Y
	}
	return box
}

func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// FixedToF converts a fixed point back to floats.
func FixedToF(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}
