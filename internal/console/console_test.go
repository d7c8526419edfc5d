package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageDone(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := New(&buf)
	ran := false
	require.NoError(t, c.Stage("Generating assembly", func() error {
		ran = true
		return nil
	}))
	assert.True(t, ran)
	assert.Equal(t, "Generating assembly... [DONE]\n", buf.String())
}

func TestStageFailed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := New(&buf)
	cause := errors.New("z2 must differ from z1")
	err := c.Stage("Generating assembly", func() error { return cause })
	require.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "Generating assembly: z2 must differ from z1")
	assert.Equal(t, "Generating assembly... [FAILED]\nError. z2 must differ from z1\n", buf.String())
}

func TestBannerAndNote(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := New(&buf)
	c.Banner("v1.0.0")
	c.Notef("%d solids", 2)
	assert.Equal(t, "STEP File Generator v1.0.0\nUse command-line option -h or /h for help.\n\n2 solids\n", buf.String())
}
