package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestPairs(t *testing.T) {
	for _, tc := range []struct {
		d    string
		want []Point
	}{
		{"M10,20L30,40", []Point{{10, 20}, {30, 40}}},
		{"M10 20 L 30,40Z", []Point{{10, 20}, {30, 40}}},
		{"M.5,.75L-3.5 -.25", []Point{{0.5, 0.75}, {-3.5, -0.25}}},
		{"M10.22,26.54c.53.17.91.5,1.2.9", []Point{{10.22, 26.54}}},
		// only absolute commands are read
		{"m10,20l30,40", nil},
		// exactly one separator
		{"M10, 20", nil},
		{"c.53.17.91.5", nil},
		{"", nil},
	} {
		assert.Equal(t, tc.want, Pairs(tc.d), "path %q", tc.d)
	}
}

func TestExtentOf(t *testing.T) {
	ext, ok := ExtentOf(3, "M10,20L30,40")
	require.True(t, ok)
	assert.Equal(t, Extent{Index: 3, MinX: 10, MaxX: 30}, ext)

	ext, ok = ExtentOf(1, "M25.1,2L12.5,7L31,1L-2 3")
	require.True(t, ok)
	assert.Equal(t, -2.0, ext.MinX)
	assert.Equal(t, 31.0, ext.MaxX)

	ext, ok = ExtentOf(7, "c1,2,3,4,5,6")
	assert.False(t, ok)
	assert.Equal(t, Extent{Index: 7}, ext)

	_, ok = ExtentOf(0, "z")
	assert.False(t, ok)
}

func TestStartX(t *testing.T) {
	for _, tc := range []struct {
		d    string
		want float64
	}{
		{"M10.22,26.54c.53.17.91.5", 10.22},
		{"M 13.4, 2.5L1,1", 13.4},
		{"m36.9 1.2c0,1,2,3", 36.9},
		{"M20.07\n4", 20.07},
		// fallback, no y coordinate
		{"M10.22", 10.22},
		{"M-.5", -0.5},
		{"c1,2,3,4,5,6", 0},
		{"", 0},
	} {
		assert.Equal(t, tc.want, StartX(tc.d), "path %q", tc.d)
	}
}

func TestCommands(t *testing.T) {
	p := Commands("M10,20L30,40M5 6")
	require.Len(t, p, 3)
	assert.Equal(t, MoveTo{X: 640, Y: 1280}, p[0])
	assert.Equal(t, LineTo{X: 1920, Y: 2560}, p[1])
	assert.Equal(t, MoveTo{X: 320, Y: 384}, p[2])
	assert.Equal(t, "M10.000,20.000 L30.000,40.000 M5.000,6.000", p.String())

	box, ok := p.Bounds()
	require.True(t, ok)
	assert.Equal(t, fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 320, Y: 384},
		Max: fixed.Point26_6{X: 1920, Y: 2560},
	}, box)

	p.Clear()
	_, ok = p.Bounds()
	assert.False(t, ok)
}

func TestDegenerateBounds(t *testing.T) {
	// an horizontal line has an empty fixed.Rectangle26_6,
	// but must not vanish from the union
	line, ok := Commands("M2,5L8,5").Bounds()
	require.True(t, ok)
	dot, ok := Commands("M20,1").Bounds()
	require.True(t, ok)

	u := UnionBounds(line, dot)
	minX, minY := FixedToF(u.Min)
	maxX, maxY := FixedToF(u.Max)
	assert.Equal(t, []float64{2, 1, 20, 5}, []float64{minX, minY, maxX, maxY})
}
