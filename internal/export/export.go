// Package export runs the model-to-file pipeline: B-rep construction,
// STEP encoding and an all-or-nothing write to disk.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"stepfg/internal/brep"
	"stepfg/internal/geom"
	"stepfg/internal/logging"
	"stepfg/internal/step"
)

type Options struct {
	// Check verifies that every shell is closed before returning.
	Check bool
}

// Assemble builds the body of m.
func Assemble(m *geom.Model, opts Options) (*brep.Body, error) {
	body := brep.Build(m)
	if opts.Check {
		if err := body.CheckClosed(); err != nil {
			return nil, err
		}
	}
	logging.Logger().Info("assembled", "stats", body.Stats().String())
	return body, nil
}

// Render encodes body and returns the complete exchange file.
func Render(body *brep.Body, hdr step.Header) ([]byte, error) {
	reg, err := step.Encode(body, hdr)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := step.Write(&buf, hdr, reg); err != nil {
		return nil, err
	}
	logging.Logger().Debug("rendered", "records", reg.Len(), "bytes", buf.Len())
	return buf.Bytes(), nil
}

// WriteFile replaces path with data. The bytes go to a temporary file in
// the same directory which is renamed over path once complete, so path
// never holds a partial file.
func WriteFile(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	logging.Logger().Debug("wrote output", "path", path, "bytes", len(data))
	return nil
}
