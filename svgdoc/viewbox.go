package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
	"golang.org/x/net/html/charset"
)

var (
	errParamMismatch = errors.New("viewBox requires 4 numbers")
	errNoRoot        = errors.New("invalid svg xml document")
)

// ViewBox defines the user space of a document.
type ViewBox struct{ X, Y, W, H float64 }

// String returns the attribute form of the box, like "0 0 32 28".
func (vb ViewBox) String() string {
	chunks := [4]string{}
	for i, v := range [4]float64{vb.X, vb.Y, vb.W, vb.H} {
		chunks[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(chunks[:], " ")
}

// IsZero is true for a missing viewBox.
func (vb ViewBox) IsZero() bool { return vb == ViewBox{} }

// BoundsViewBox returns the box covering `r`.
func BoundsViewBox(r fixed.Rectangle26_6) ViewBox {
	return ViewBox{
		X: float64(r.Min.X) / 64,
		Y: float64(r.Min.Y) / 64,
		W: float64(r.Max.X-r.Min.X) / 64,
		H: float64(r.Max.Y-r.Min.Y) / 64,
	}
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

// ParseViewBox parses a viewBox attribute value.
func ParseViewBox(v string) (ViewBox, error) {
	fields := splitOnCommaOrSpace(v)
	if len(fields) != 4 {
		return ViewBox{}, errParamMismatch
	}
	var points [4]float64
	for i, f := range fields {
		var err error
		points[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return ViewBox{}, fmt.Errorf("invalid viewBox %q: %w", v, err)
		}
	}
	return ViewBox{points[0], points[1], points[2], points[3]}, nil
}

// parseLength accepts unit-less and pixel lengths
func parseLength(v string) (float64, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	return strconv.ParseFloat(v, 64)
}

// ReadViewBox reads the root svg element of the document and returns
// its viewBox, or its width and height if the viewBox is missing.
// A zero ViewBox is returned if both are absent.
func ReadViewBox(stream io.Reader) (ViewBox, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				return ViewBox{}, errNoRoot
			}
			return ViewBox{}, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue // prolog, comments
		}
		if se.Name.Local != "svg" {
			return ViewBox{}, fmt.Errorf("unexpected root element <%s>", se.Name.Local)
		}
		return readRootAttrs(se.Attr)
	}
}

func readRootAttrs(attrs []xml.Attr) (vb ViewBox, err error) {
	var width, height float64
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			vb, err = ParseViewBox(attr.Value)
		case "width":
			width, err = parseLength(attr.Value)
		case "height":
			height, err = parseLength(attr.Value)
		}
		if err != nil {
			return ViewBox{}, err
		}
	}
	if vb.W == 0 {
		vb.W = width
	}
	if vb.H == 0 {
		vb.H = height
	}
	return vb, nil
}
