package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepfg/internal/geom"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFull(t *testing.T) {
	t.Parallel()

	p := writeConfig(t, "stepfg.toml", `
input = "plate.dxf"
output = "plate.stp"
z1 = 0.0
z2 = 5.0
scale = 25.4
normalize_winding = true
dxf_encoding = "gbk"

[header]
author = "Q. Engineer"
product_name = "Plate"
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "plate.dxf", cfg.Input)
	assert.Equal(t, "plate.stp", cfg.Output)
	assert.Equal(t, &geom.Extrusion{Z1: 0, Z2: 5}, cfg.Extrusion())
	require.NotNil(t, cfg.Scale)
	assert.InDelta(t, 25.4, *cfg.Scale, 0)
	assert.True(t, cfg.NormalizeWinding)
	assert.Equal(t, "gbk", cfg.DXFEncoding)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	h := cfg.StepHeader("plate.stp", now)
	assert.Equal(t, "Q. Engineer", h.Author)
	assert.Equal(t, "Plate", h.ProductName)
	assert.Equal(t, "none", h.Organization)
	assert.Equal(t, "plate.stp", h.FileName)
	assert.Equal(t, now, h.Time)
}

func TestLoadKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "empty.toml", "# nothing\n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Nil(t, cfg.Extrusion())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, file, body, want string
	}{
		{"extension", "cfg.json", `{}`, "must have .toml extension"},
		{"unknown key", "a.toml", "depth = 3\n", "unknown keys"},
		{"syntax", "b.toml", "z1 = = 3\n", "failed to parse config TOML"},
		{"half interval", "c.toml", "z1 = 1.0\n", "z1 and z2 must be set together"},
		{"encoding", "g.toml", "dxf_encoding = \"latin1\"\n", "unsupported dxf_encoding"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeConfig(t, tt.file, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadLeavesValuesToModel(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "flat.toml", "z1 = 1.0\nz2 = 1.0\nscale = 0.0\n"))
	require.NoError(t, err)

	sq := []geom.Polygon{{Outer: geom.Ring{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}}}
	_, err = geom.New(sq, *cfg.Extrusion(), *cfg.Scale)
	assert.ErrorIs(t, err, geom.ErrInvalidScale)
	_, err = geom.New(sq, *cfg.Extrusion(), 1)
	assert.ErrorIs(t, err, geom.ErrInvalidExtrusion)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
