package step

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepfg/internal/geom"
)

func TestWriteHeaderAndFooter(t *testing.T) {
	t.Parallel()

	hdr := DefaultHeader("part_out.stp", testTime)
	hdr.Author = "J. O'Neil"
	reg, err := Encode(squareBody(t, geom.Extrusion{Z1: 0, Z2: 1}, 1), hdr)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, hdr, reg))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "ISO-10303-21;\nHEADER;\nFILE_DESCRIPTION(('none'),'2;1');\n"))
	assert.Contains(t, out, "FILE_NAME('part_out.stp','2026-10-18T09:30:05',('J. O''Neil'),('none'),'none','stepfg','none');\n")
	assert.Contains(t, out, "FILE_SCHEMA(('CONFIG_CONTROL_DESIGN'));\nENDSEC;\n")
	assert.True(t, strings.HasSuffix(out, "ENDSEC;\nEND-ISO-10303-21;\n"))

	assert.Contains(t, out, "#1=APPLICATION_CONTEXT('configuration controlled 3D design of mechanical parts and assemblies');\n")
	assert.Contains(t, out, "=(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.));\n")
	assert.Contains(t, out, "=UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(0.005),#")
	assert.Contains(t, out, "=PERSON(' ','J. O''Neil',' ',$,$,$);\n")
	assert.Contains(t, out, "=CALENDAR_DATE(2026,18,10);\n")
	assert.Contains(t, out, "=COORDINATED_UNIVERSAL_TIME_OFFSET(0,0,.AHEAD.);\n")
	assert.NotContains(t, out, ".EXACT.")
	assert.Contains(t, out, "=LOCAL_TIME(9,30,5.,#")
}

func TestWriteTimeZoneOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		zone *time.Location
		want string
	}{
		{time.UTC, "(0,0,.AHEAD.)"},
		{time.FixedZone("GMT", 0), "(0,0,.AHEAD.)"},
		{time.FixedZone("EST", -5*3600), "(5,0,.BEHIND.)"},
		{time.FixedZone("IST", 5*3600+1800), "(5,30,.AHEAD.)"},
	}
	for _, tt := range tests {
		hdr := DefaultHeader("x.stp", testTime.In(tt.zone))
		reg := NewRegistry()
		registerProduct(reg, hdr)
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, hdr, reg))
		assert.Contains(t, buf.String(), "COORDINATED_UNIVERSAL_TIME_OFFSET"+tt.want)
	}
}

func TestWriteRendersParams(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.New(Simple("PLANE", Str("")))
	reg.New(Simple("THING", ID(1), Refs(1, 1), Int(-2), Real(1e21), Enum("UNSPECIFIED"), Bool(false), Unset, Derived,
		Typed{Name: "LENGTH_MEASURE", Value: Real(2)}, List{}))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Header{Time: testTime}, reg))
	assert.Contains(t, buf.String(), "DATA;\n#1=PLANE('');\n#2=THING(#1,(#1,#1),-2,1.E+21,.UNSPECIFIED.,.F.,$,*,LENGTH_MEASURE(2.),());\nENDSEC;\n")
}

func TestWriteRejectsBrokenRegistry(t *testing.T) {
	t.Parallel()

	tests := map[string]Entity{
		"dangling reference": Simple("ORIENTED_EDGE", Str(""), Derived, Derived, ID(7), Bool(true)),
		"nested dangling":    Simple("CLOSED_SHELL", Str(""), Refs(1, 9)),
		"NaN":                Simple("CARTESIAN_POINT", Str(""), List{Real(math.NaN()), Real(0), Real(0)}),
		"infinity":           Simple("VECTOR", Str(""), ID(1), Real(math.Inf(1))),
		"empty":              {},
	}
	for name, e := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			reg := NewRegistry()
			reg.New(Simple("DIRECTION", Str(""), List{Real(1), Real(0), Real(0)}))
			reg.New(e)

			var buf bytes.Buffer
			err := Write(&buf, Header{Time: testTime}, reg)
			assert.ErrorIs(t, err, ErrSerialization)
			assert.Zero(t, buf.Len(), "nothing may be written on failure")
		})
	}
}
