// Package crop extracts the logo symbol of an SVG document,
// by keeping only the paths starting on its left part.
package crop

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/benoitkugler/svgcrop/svgdoc"
	"github.com/benoitkugler/svgcrop/svgpath"
	"github.com/benoitkugler/svgcrop/svgraster"
	"golang.org/x/image/math/fixed"
)

// Result describes a crop run.
type Result struct {
	Total, Kept int

	// Bounds of the M/L points of the kept paths,
	// only meaningful if HasBounds is true.
	Bounds    fixed.Rectangle26_6
	HasBounds bool

	ViewBox  string // viewBox actually written
	Document string // written document
}

// build reads the input and assembles the output in memory,
// so that nothing is written if the input can't be read.
func build(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	content, err := svgdoc.ReadFile(cfg.Input)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", cfg.Input, err)
	}

	paths := svgdoc.PathData(content)
	kept, _ := Classifier{Threshold: cfg.Threshold}.Split(paths)
	res := Result{Total: len(paths), Kept: len(kept), ViewBox: cfg.ViewBox}

	for _, d := range kept {
		box, ok := svgpath.Commands(d).Bounds()
		if !ok {
			continue
		}
		if res.HasBounds {
			box = svgpath.UnionBounds(res.Bounds, box)
		}
		res.Bounds, res.HasBounds = box, true
	}

	if cfg.Fit {
		if res.HasBounds {
			res.ViewBox = svgdoc.BoundsViewBox(res.Bounds).String()
			log.Printf("fitted viewBox: %s", res.ViewBox)
		} else {
			log.Printf("no M/L point in kept paths, using viewBox %s", cfg.ViewBox)
		}
	}

	res.Document = svgdoc.Assemble(kept, res.ViewBox, svgdoc.Style{Class: cfg.Class, Fill: cfg.Fill})
	return res, nil
}

// Extract reads cfg.Input and writes the cropped document to `dst`.
// cfg.Output and cfg.Preview are ignored.
func Extract(cfg Config, dst io.Writer) (Result, error) {
	res, err := build(cfg)
	if err != nil {
		return res, err
	}
	_, err = io.WriteString(dst, res.Document)
	return res, err
}

// Run writes the cropped document to cfg.Output, an optional
// preview, and prints a summary line to `stdout`.
func Run(cfg Config, stdout io.Writer) (Result, error) {
	res, err := build(cfg)
	if err != nil {
		return res, err
	}
	if err = writeFile(cfg.Output, res.Document); err != nil {
		return res, err
	}
	if err = WritePreview(cfg, res.Document); err != nil {
		return res, err
	}
	fmt.Fprintf(stdout, "Processed %d paths.\n", res.Kept)
	return res, nil
}

func writeFile(name, content string) (err error) {
	fout, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer func() {
		if errc := fout.Close(); err == nil && errc != nil {
			err = fmt.Errorf("closing %s: %w", name, errc)
		}
	}()
	if _, err = io.WriteString(fout, content); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// WritePreview rasterizes `document` to cfg.Preview, if set.
func WritePreview(cfg Config, document string) (err error) {
	if cfg.Preview == "" {
		return nil
	}
	fout, err := os.Create(cfg.Preview)
	if err != nil {
		return fmt.Errorf("creating preview: %w", err)
	}
	defer func() {
		if errc := fout.Close(); err == nil && errc != nil {
			err = fmt.Errorf("closing preview: %w", errc)
		}
	}()
	if err = svgraster.RenderPNG(fout, strings.NewReader(document), cfg.PreviewWidth); err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	return nil
}
