package svgdoc

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestReadViewBox(t *testing.T) {
	f, err := os.Open("testdata/anadolu_raw.svg")
	require.NoError(t, err)
	defer f.Close()

	vb, err := ReadViewBox(f)
	require.NoError(t, err)
	assert.Equal(t, ViewBox{0, 0, 119.51, 27.76}, vb)
	assert.Equal(t, "0 0 119.51 27.76", vb.String())

	vb, err = ReadViewBox(strings.NewReader(`<!-- icon --><svg width="120px" height="28"></svg>`))
	require.NoError(t, err)
	assert.Equal(t, ViewBox{0, 0, 120, 28}, vb)

	vb, err = ReadViewBox(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><path d="M1,2"/></svg>`))
	require.NoError(t, err)
	assert.True(t, vb.IsZero())
}

func TestReadViewBoxErrors(t *testing.T) {
	for _, doc := range []string{
		"",
		"<html></html>",
		`<svg viewBox="0 0 32"></svg>`,
		`<svg viewBox="0 0 a b"></svg>`,
		`<svg width="12em"></svg>`,
	} {
		_, err := ReadViewBox(strings.NewReader(doc))
		assert.Error(t, err, doc)
	}
}

func TestParseViewBox(t *testing.T) {
	vb, err := ParseViewBox("0,0, 32 28")
	require.NoError(t, err)
	assert.Equal(t, ViewBox{0, 0, 32, 28}, vb)
	assert.Equal(t, "0 0 32 28", vb.String())

	vb, err = ParseViewBox("-1.5 2 19.5 12.25")
	require.NoError(t, err)
	assert.Equal(t, "-1.5 2 19.5 12.25", vb.String())

	_, err = ParseViewBox("")
	assert.Error(t, err)
}

func TestBoundsViewBox(t *testing.T) {
	r := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 64 * 10, Y: 32},
		Max: fixed.Point26_6{X: 64 * 30, Y: 64 * 28},
	}
	assert.Equal(t, ViewBox{10, 0.5, 20, 27.5}, BoundsViewBox(r))
}
