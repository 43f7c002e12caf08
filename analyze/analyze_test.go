package analyze

import (
	"bytes"
	"testing"

	"github.com/benoitkugler/svgcrop/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	var out bytes.Buffer
	extents := Report(&out, []string{"M10,20L30,40", "c1,2,3,4,5,6z", "", "M-1.25 3L7.96,1"})

	assert.Equal(t, `Total paths found: 4
Path 0: X range [10.0, 30.0]
Path 1: Could not parse M/L commands
Path 2: Could not parse M/L commands
Path 3: X range [-1.2, 8.0]
`, out.String())
	assert.Equal(t, []svgpath.Extent{
		{Index: 0, MinX: 10, MaxX: 30},
		{Index: 3, MinX: -1.25, MaxX: 7.96},
	}, extents)
}

func TestReportEmpty(t *testing.T) {
	var out bytes.Buffer
	extents := Report(&out, nil)
	assert.Equal(t, "Total paths found: 0\n", out.String())
	assert.Empty(t, extents)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	extents, err := Run(&out, "testdata/anadolu_raw.svg")
	require.NoError(t, err)

	assert.Equal(t, `Analyzing SVG...
Total paths found: 6
Path 0: X range [10.2, 12.5]
Path 1: X range [13.4, 18.6]
Path 2: X range [20.1, 29.5]
Path 3: X range [36.9, 36.9]
Path 4: X range [48.3, 48.3]
Path 5: Could not parse M/L commands
`, out.String())
	require.Len(t, extents, 5)
	assert.Equal(t, 4, extents[4].Index)
}

func TestRunMissing(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(&out, "testdata/missing.svg")
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
