package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWinding(t *testing.T) {
	t.Parallel()

	cw := Ring{{0, 0}, {0, 2}, {2, 2}, {2, 0}}
	ccwHole := Ring{{1, 1}, {1.5, 1}, {1.5, 1.5}}

	got, err := NormalizeWinding([]Polygon{{Name: "a", Outer: cw, Holes: []Ring{ccwHole}}})
	require.NoError(t, err)

	want := []Polygon{{
		Name:  "a",
		Outer: Ring{{2, 0}, {2, 2}, {0, 2}, {0, 0}},
		Holes: []Ring{{{1.5, 1.5}, {1.5, 1}, {1, 1}}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeWinding mismatch (-want +got):\n%s", diff)
	}
	// input untouched
	assert.Equal(t, Point2D{0, 0}, cw[0])
}

func TestNormalizeWindingKeepsCCW(t *testing.T) {
	t.Parallel()

	in := []Polygon{square()}
	got, err := NormalizeWinding(in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestNormalizeWindingRejectsFlatRing(t *testing.T) {
	t.Parallel()

	_, err := NormalizeWinding([]Polygon{{Outer: Ring{{0, 0}, {1, 1}, {2, 2}}}})
	assert.ErrorIs(t, err, ErrMalformedGeometry)
}
