package step

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0."},
		{20, "20."},
		{-3, "-3."},
		{0.5, "0.5"},
		{0.005, "0.005"},
		{1e21, "1.E+21"},
		{1.5e-7, "1.5E-07"},
		{0.1 + 0.2, "0.30000000000000004"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatReal(tt.in), "%v", tt.in)
	}
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", "''"},
		{"PartBody.1", "'PartBody.1'"},
		{"it's", "'it''s'"},
		{`a\b`, `'a\\b'`},
		{"Grüße", `'Gr\X2\00FC00DF\X0\e'`},
		{"零件", `'\X2\96F64EF6\X0\'`},
		{"\U0001F600", `'\X4\0001F600\X0\'`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatString(tt.in), tt.in)
	}
}
