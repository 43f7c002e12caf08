// Package analyze reports the horizontal extent of every
// path of an SVG document, to locate clusters of paths
// (typically a logo symbol on the left and text on the right).
package analyze

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/benoitkugler/svgcrop/svgdoc"
	"github.com/benoitkugler/svgcrop/svgpath"
)

// DefaultInput is the document analyzed when none is given.
const DefaultInput = "public/icons/universities/ataturk-aof_raw.svg"

// Report writes the path count, then one line per path
// with its horizontal range, and returns the extents of the
// paths which could be measured.
func Report(w io.Writer, paths []string) []svgpath.Extent {
	fmt.Fprintf(w, "Total paths found: %d\n", len(paths))

	var extents []svgpath.Extent
	for i, d := range paths {
		ext, ok := svgpath.ExtentOf(i, d)
		if !ok {
			fmt.Fprintf(w, "Path %d: Could not parse M/L commands\n", i)
			continue
		}
		extents = append(extents, ext)
		fmt.Fprintf(w, "Path %d: X range [%.1f, %.1f]\n", i, ext.MinX, ext.MaxX)
	}
	return extents
}

// Run reads the named document and writes its report to `w`.
func Run(w io.Writer, name string) ([]svgpath.Extent, error) {
	content, err := svgdoc.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	if vb, err := svgdoc.ReadViewBox(strings.NewReader(content)); err != nil {
		log.Println("no viewBox found:", err)
	} else if !vb.IsZero() {
		log.Printf("%s: viewBox %s", name, vb)
	}

	fmt.Fprintln(w, "Analyzing SVG...")
	return Report(w, svgdoc.PathData(content)), nil
}
