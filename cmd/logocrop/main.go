// Command logocrop keeps the logo symbol of an SVG file,
// dropping the text paths on its right.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/benoitkugler/svgcrop/crop"
	"golang.org/x/term"
)

// pipeName is the output name that indicates stdout is being used.
const pipeName = "-"

func main() {
	log.SetFlags(0)

	cfg := crop.LoadConfig()
	flag.StringVar(&cfg.Input, "in", cfg.Input, "Source SVG file")
	flag.StringVar(&cfg.Output, "out", cfg.Output, "Destination SVG file, or - for stdout")
	flag.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "Keep paths starting left of this x coordinate")
	flag.StringVar(&cfg.ViewBox, "viewbox", cfg.ViewBox, "viewBox of the destination")
	flag.StringVar(&cfg.Fill, "fill", cfg.Fill, "Fill color of the kept paths")
	flag.StringVar(&cfg.Class, "class", cfg.Class, "Style class of the kept paths")
	flag.BoolVar(&cfg.Fit, "fit", cfg.Fit, "Fit the viewBox to the kept paths")
	flag.StringVar(&cfg.Preview, "preview", cfg.Preview, "Optional PNG preview of the destination")
	flag.IntVar(&cfg.PreviewWidth, "preview-width", cfg.PreviewWidth, "Width of the PNG preview, in pixels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if cfg.Output != pipeName {
		if _, err := crop.Run(cfg, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal(errors.New("`-` should be used with a pipe for stdout"))
	}
	res, err := crop.Extract(cfg, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if err = crop.WritePreview(cfg, res.Document); err != nil {
		log.Fatal(err)
	}
	// stdout holds the document
	fmt.Fprintf(os.Stderr, "Processed %d paths.\n", res.Kept)
}
