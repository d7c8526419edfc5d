package step

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrSerialization reports a registry that cannot be written: a reference
// to an unissued ID or a value with no textual form. It always indicates a
// bug in the builder.
var ErrSerialization = errors.New("serialization error")

const timestampLayout = "2006-01-02T15:04:05"

// Write renders the exchange file for reg. The whole file is rendered and
// checked before anything is written to w.
func Write(w io.Writer, hdr Header, reg *Registry) error {
	var b strings.Builder
	b.WriteString("ISO-10303-21;\nHEADER;\n")
	fmt.Fprintf(&b, "FILE_DESCRIPTION((%s),'2;1');\n", formatString(hdr.Description))
	fmt.Fprintf(&b, "FILE_NAME(%s,%s,(%s),(%s),%s,%s,%s);\n",
		formatString(hdr.FileName),
		formatString(hdr.Time.Format(timestampLayout)),
		formatString(hdr.Author),
		formatString(hdr.Organization),
		formatString(hdr.Preprocessor),
		formatString(hdr.OriginatingSystem),
		formatString(hdr.Authorization))
	b.WriteString("FILE_SCHEMA(('CONFIG_CONTROL_DESIGN'));\nENDSEC;\n\nDATA;\n")

	for _, rec := range reg.Records() {
		fmt.Fprintf(&b, "#%d=", rec.ID)
		if err := writeEntity(&b, reg, rec.Entity); err != nil {
			return fmt.Errorf("#%d: %w", rec.ID, err)
		}
		b.WriteString(";\n")
	}
	b.WriteString("ENDSEC;\nEND-ISO-10303-21;\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeEntity(b *strings.Builder, reg *Registry, e Entity) error {
	switch len(e) {
	case 0:
		return fmt.Errorf("%w: empty entity", ErrSerialization)
	case 1:
		return writePart(b, reg, e[0])
	}
	b.WriteByte('(')
	for _, p := range e {
		if err := writePart(b, reg, p); err != nil {
			return err
		}
	}
	b.WriteByte(')')
	return nil
}

func writePart(b *strings.Builder, reg *Registry, p Part) error {
	b.WriteString(p.Name)
	b.WriteByte('(')
	if err := writeParams(b, reg, p.Params); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	b.WriteByte(')')
	return nil
}

func writeParams(b *strings.Builder, reg *Registry, params []Param) error {
	for i, p := range params {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := writeParam(b, reg, p); err != nil {
			return err
		}
	}
	return nil
}

func writeParam(b *strings.Builder, reg *Registry, p Param) error {
	switch v := p.(type) {
	case ID:
		if !reg.Has(v) {
			return fmt.Errorf("%w: reference to undefined #%d", ErrSerialization, v)
		}
		b.WriteByte('#')
		b.WriteString(strconv.Itoa(int(v)))
	case Str:
		b.WriteString(formatString(string(v)))
	case Real:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite real %v", ErrSerialization, f)
		}
		b.WriteString(formatReal(f))
	case Int:
		b.WriteString(strconv.Itoa(int(v)))
	case Enum:
		b.WriteByte('.')
		b.WriteString(string(v))
		b.WriteByte('.')
	case Bool:
		if v {
			b.WriteString(".T.")
		} else {
			b.WriteString(".F.")
		}
	case List:
		b.WriteByte('(')
		if err := writeParams(b, reg, v); err != nil {
			return err
		}
		b.WriteByte(')')
	case Typed:
		b.WriteString(v.Name)
		b.WriteByte('(')
		if err := writeParam(b, reg, v.Value); err != nil {
			return err
		}
		b.WriteByte(')')
	case special:
		b.WriteString(string(v))
	default:
		return fmt.Errorf("%w: unsupported parameter %T", ErrSerialization, p)
	}
	return nil
}
