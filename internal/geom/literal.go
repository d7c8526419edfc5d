package geom

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

// literal is one node of the bracketed input structure: a number or a list.
type literal struct {
	pos    scanner.Position
	num    float64
	list   []literal
	isList bool
}

// ParseLiteral reads the native input format
//
//	[polygons, [z1, z2], scale]
//
// where polygons is [[[x, y], [x, y, 0], ...], ...]. The outer brackets
// may be omitted, parentheses may stand in for brackets, and '#' starts a
// comment running to the end of the line.
func ParseLiteral(src string) (Input, error) {
	p := &literalParser{}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanInts | scanner.ScanFloats
	p.s.Filename = "input"
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("%w: %s: %s", ErrInputSyntax, s.Position, msg)
		}
	}
	p.next()

	var top []literal
	for {
		v, err := p.value()
		if err != nil {
			return Input{}, err
		}
		top = append(top, v)
		if p.tok != ',' {
			break
		}
		p.next()
		if p.tok == scanner.EOF { // trailing comma of a bare tuple
			break
		}
	}
	if p.tok != scanner.EOF {
		return Input{}, p.unexpected("end of input")
	}
	if p.err != nil {
		return Input{}, p.err
	}
	if len(top) == 1 && top[0].isList {
		top = top[0].list
	}
	if len(top) != 3 {
		return Input{}, fmt.Errorf("%w: top-level structure has %d elements, expected 3", ErrInputSyntax, len(top))
	}
	return literalInput(top)
}

type literalParser struct {
	s   scanner.Scanner
	tok rune
	err error
}

func (p *literalParser) next() {
	for {
		p.tok = p.s.Scan()
		if p.tok != '#' {
			return
		}
		for ch := p.s.Next(); ch != '\n' && ch != scanner.EOF; ch = p.s.Next() {
		}
	}
}

func (p *literalParser) unexpected(want string) error {
	if p.err != nil {
		return p.err
	}
	got := p.s.TokenText()
	if p.tok == scanner.EOF {
		got = "end of input"
	}
	return fmt.Errorf("%w: %s: expected %s, found %q", ErrInputSyntax, p.s.Position, want, got)
}

func (p *literalParser) value() (literal, error) {
	pos := p.s.Position
	switch p.tok {
	case '[', '(':
		closing := ']'
		if p.tok == '(' {
			closing = ')'
		}
		p.next()
		v := literal{pos: pos, isList: true}
		for p.tok != closing {
			item, err := p.value()
			if err != nil {
				return literal{}, err
			}
			v.list = append(v.list, item)
			if p.tok == ',' {
				p.next()
				continue
			}
			if p.tok != closing {
				return literal{}, p.unexpected(fmt.Sprintf("',' or '%c'", closing))
			}
		}
		p.next()
		return v, nil
	case '-', '+':
		sign := 1.0
		if p.tok == '-' {
			sign = -1
		}
		p.next()
		v, err := p.value()
		if err != nil {
			return literal{}, err
		}
		if v.isList {
			return literal{}, fmt.Errorf("%w: %s: sign applied to a list", ErrInputSyntax, pos)
		}
		v.num *= sign
		v.pos = pos
		return v, nil
	case scanner.Int:
		text := p.s.TokenText()
		if len(text) > 1 && text[0] == '0' && strings.Trim(text, "0_") != "" && (isDigit(text[1]) || text[1] == '_') {
			return literal{}, fmt.Errorf("%w: %s: leading zeros in decimal integer %q are not permitted", ErrInputSyntax, pos, text)
		}
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return literal{}, fmt.Errorf("%w: %s: %v", ErrInputSyntax, pos, err)
		}
		p.next()
		return literal{pos: pos, num: float64(n)}, nil
	case scanner.Float:
		f, err := strconv.ParseFloat(p.s.TokenText(), 64)
		if err != nil {
			return literal{}, fmt.Errorf("%w: %s: %v", ErrInputSyntax, pos, err)
		}
		p.next()
		return literal{pos: pos, num: f}, nil
	}
	return literal{}, p.unexpected("number or list")
}

func literalInput(top []literal) (Input, error) {
	polys, depth, coeff := top[0], top[1], top[2]
	if coeff.isList {
		return Input{}, fmt.Errorf("%w: %s: proportionality coefficient must be a number", ErrInputSyntax, coeff.pos)
	}
	if !depth.isList {
		return Input{}, fmt.Errorf("%w: %s: z-coordinate interval [z1, z2] expected, scalar supplied", ErrInputSyntax, depth.pos)
	}
	if len(depth.list) != 2 {
		return Input{}, fmt.Errorf("%w: %s: z-coordinate interval needs 2 values, %d supplied", ErrInputSyntax, depth.pos, len(depth.list))
	}
	for _, z := range depth.list {
		if z.isList {
			return Input{}, fmt.Errorf("%w: %s: z-coordinate must be a number", ErrInputSyntax, z.pos)
		}
	}
	if !polys.isList {
		return Input{}, fmt.Errorf("%w: %s: list of vertex lists expected, scalar supplied", ErrInputSyntax, polys.pos)
	}
	in := Input{
		Extrusion: &Extrusion{Z1: depth.list[0].num, Z2: depth.list[1].num},
		Scale:     &coeff.num,
	}
	for _, pl := range polys.list {
		if !pl.isList {
			return Input{}, fmt.Errorf("%w: %s: list of vertices expected, scalar supplied", ErrInputSyntax, pl.pos)
		}
		var ring Ring
		for _, vl := range pl.list {
			if !vl.isList {
				return Input{}, fmt.Errorf("%w: %s: list of vertex coordinates expected, scalar supplied", ErrInputSyntax, vl.pos)
			}
			if n := len(vl.list); n < 2 || n > 3 {
				return Input{}, fmt.Errorf("%w: %s: number of vertex coordinates should be 2 or 3, %d supplied", ErrInputSyntax, vl.pos, n)
			}
			for _, c := range vl.list {
				if c.isList {
					return Input{}, fmt.Errorf("%w: %s: vertex coordinate must be a number", ErrInputSyntax, c.pos)
				}
			}
			ring = append(ring, Point2D{X: vl.list[0].num, Y: vl.list[1].num})
		}
		in.Polygons = append(in.Polygons, Polygon{Outer: ring})
	}
	return in, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
