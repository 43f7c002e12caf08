package crop

import "github.com/benoitkugler/svgcrop/svgpath"

// Classifier separates the logo paths from the text paths,
// which are assumed to start further right.
type Classifier struct {
	Threshold float64
}

// Retain is true for paths starting at `startX`
// strictly left of the threshold.
func (c Classifier) Retain(startX float64) bool {
	return startX < c.Threshold
}

// Split returns the paths to keep, in their original order,
// and the number of discarded ones.
func (c Classifier) Split(paths []string) (kept []string, rejected int) {
	for _, d := range paths {
		if c.Retain(svgpath.StartX(d)) {
			kept = append(kept, d)
		} else {
			rejected++
		}
	}
	return kept, rejected
}
