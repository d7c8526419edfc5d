package step

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// formatReal writes the shortest representation that parses back to v,
// with the decimal point the format requires: 20 -> "20.", 1e21 -> "1.E+21".
func formatReal(v float64) string {
	if v == 0 {
		return "0." // also folds -0
	}
	s := strconv.FormatFloat(v, 'G', -1, 64)
	if strings.ContainsRune(s, '.') {
		return s
	}
	if i := strings.IndexByte(s, 'E'); i >= 0 {
		return s[:i] + "." + s[i:]
	}
	return s + "."
}

// formatString quotes s as a STEP string literal. Apostrophes and
// backslashes are doubled; characters outside printable ASCII are written
// as \X2\hhhh\X0\ (or \X4\hhhhhhhh\X0\ beyond the BMP).
func formatString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	var wide []rune
	flush := func() {
		if len(wide) == 0 {
			return
		}
		var bmp, astral bool
		for _, r := range wide {
			if r > 0xFFFF {
				astral = true
			} else {
				bmp = true
			}
		}
		switch {
		case astral && !bmp:
			b.WriteString(`\X4\`)
			for _, r := range wide {
				fmt.Fprintf(&b, "%08X", r)
			}
		default:
			b.WriteString(`\X2\`)
			for _, u := range utf16.Encode(wide) {
				fmt.Fprintf(&b, "%04X", u)
			}
		}
		b.WriteString(`\X0\`)
		wide = wide[:0]
	}
	for _, r := range s {
		if r < 0x20 || r > 0x7E {
			wide = append(wide, r)
			continue
		}
		flush()
		switch r {
		case '\'':
			b.WriteString("''")
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	flush()
	b.WriteByte('\'')
	return b.String()
}
