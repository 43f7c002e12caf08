package svgdoc

import (
	"bufio"
	"io"
	"strings"
)

// Style is the single CSS class shared by every written path.
type Style struct {
	Class string // class name, without the leading dot
	Fill  string // CSS color, like #a52632
}

const (
	svgHeader   = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="`
	layersOpen  = `<g id="Layer_2" data-name="Layer 2"><g id="Layer_1-2" data-name="Layer 1">`
	layersClose = `</g></g></svg>`
)

// WriteDocument writes a minimal svg document holding `paths`, in order,
// all tagged with `style`. The path data and the style are inserted
// verbatim, so they must not contain double quotes.
func WriteDocument(w io.Writer, paths []string, viewBox string, style Style) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(svgHeader)
	bw.WriteString(viewBox)
	bw.WriteString(`"><defs><style>.`)
	bw.WriteString(style.Class)
	bw.WriteString(`{fill:`)
	bw.WriteString(style.Fill)
	bw.WriteString(`;}</style></defs>`)
	bw.WriteString(layersOpen)
	for _, d := range paths {
		bw.WriteString(`<path class="`)
		bw.WriteString(style.Class)
		bw.WriteString(`" d="`)
		bw.WriteString(d)
		bw.WriteString(`"/>`)
	}
	bw.WriteString(layersClose)
	// bufio keeps the first write error
	return bw.Flush()
}

// Assemble returns the document written by WriteDocument.
func Assemble(paths []string, viewBox string, style Style) string {
	var b strings.Builder
	_ = WriteDocument(&b, paths, viewBox, style) // strings.Builder never fails
	return b.String()
}
