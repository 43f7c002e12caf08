// Reads path data out of SVG documents, and writes
// back minimal documents made of a subset of these paths.
//
// The document text is never fully parsed: path data are
// located with a pattern on the raw text, so that the
// extracted strings are exactly those of the source file.
package svgdoc

import (
	"errors"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

// the d attribute must be double quoted, without escaped quotes
var pathData = regexp.MustCompile(`<path[^>]*d="([^"]*)"`)

// PathData returns the d attribute of every path element
// of `content`, in document order.
// It returns nil if there is no such element.
func PathData(content string) []string {
	var out []string
	for _, m := range pathData.FindAllStringSubmatch(content, -1) {
		out = append(out, m[1])
	}
	return out
}

// ReadDocument returns the text of the document, decoded
// to UTF-8 according to its byte order mark or content.
func ReadDocument(stream io.Reader) (string, error) {
	r, err := charset.NewReader(stream, "image/svg+xml")
	if err != nil {
		if errors.Is(err, io.EOF) { // empty document
			return "", nil
		}
		return "", err
	}
	var b strings.Builder
	if _, err = io.Copy(&b, r); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ReadFile reads the named document, see ReadDocument.
func ReadFile(name string) (string, error) {
	fin, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer fin.Close()
	return ReadDocument(fin)
}
