// Command svgextent prints the horizontal range of every path of an SVG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/benoitkugler/svgcrop/analyze"
)

var source = flag.String("in", analyze.DefaultInput, "Source SVG file")

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if _, err := analyze.Run(os.Stdout, *source); err != nil {
		log.Fatal(err)
	}
}
