package svgpath

import (
	"regexp"
	"strconv"
)

// This file implements the coordinate heuristics.
// No command arity is tracked: an absolute move or line
// command followed by two numbers is read as a point,
// everything else is skipped.

// number matches forms like 12, -3.5, .75 and -.5
const number = `(-?\d*\.?\d+)`

var (
	// exactly one space or comma between x and y
	moveLinePair = regexp.MustCompile(`([ML]) *` + number + `[ ,]` + number)

	// both absolute and relative moves are accepted
	startPair = regexp.MustCompile(`[Mm]\s*` + number + `\s*[,\s]\s*` + number)
	// compact encodings like M10.22 with no separator
	startX = regexp.MustCompile(`[Mm]` + number)
)

// Point is an (x, y) pair read from path data.
type Point struct{ X, Y float64 }

// Extent is the horizontal range covered by
// the M/L points of the path at Index.
type Extent struct {
	Index      int
	MinX, MaxX float64
}

// parseNumber never fails on strings matched by `number`
func parseNumber(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// Pairs returns the points following the absolute
// M and L commands of `d`, in order of appearance.
// It returns nil when no such command is found.
func Pairs(d string) []Point {
	var out []Point
	for _, m := range moveLinePair.FindAllStringSubmatch(d, -1) {
		out = append(out, Point{X: parseNumber(m[2]), Y: parseNumber(m[3])})
	}
	return out
}

// Commands returns the same points as Pairs, as path operations.
func Commands(d string) Path {
	var p Path
	for _, m := range moveLinePair.FindAllStringSubmatch(d, -1) {
		pt := toFixedP(parseNumber(m[2]), parseNumber(m[3]))
		if m[1] == "M" {
			p.Start(pt)
		} else {
			p.Line(pt)
		}
	}
	return p
}

// ExtentOf computes the horizontal extent of `d`.
// The boolean is false when `d` has no M/L pair, in which
// case only the Index of the returned Extent is set.
func ExtentOf(index int, d string) (Extent, bool) {
	pts := Pairs(d)
	if len(pts) == 0 {
		return Extent{Index: index}, false
	}
	ext := Extent{Index: index, MinX: pts[0].X, MaxX: pts[0].X}
	for _, pt := range pts[1:] {
		if pt.X < ext.MinX {
			ext.MinX = pt.X
		}
		if pt.X > ext.MaxX {
			ext.MaxX = pt.X
		}
	}
	return ext, true
}

// StartX returns the horizontal coordinate where `d` begins :
// the first number after a leading M or m, or 0 if there is none.
// A relative m is read as absolute, which is only exact
// for the first sub-path of a document.
func StartX(d string) float64 {
	if m := startPair.FindStringSubmatch(d); m != nil {
		return parseNumber(m[1])
	}
	if m := startX.FindStringSubmatch(d); m != nil {
		return parseNumber(m[1])
	}
	return 0
}
