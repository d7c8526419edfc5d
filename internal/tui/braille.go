package tui

import "sort"

// dotBits maps a micro-pixel (column, row) inside a cell to its braille
// dot. Each cell is 2 micro-pixels wide and 4 tall.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

type canvas struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell dot mask
}

func newCanvas(w, h int) *canvas {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &canvas{w: w, h: h, m: m}
}

// set lights the micro-pixel (mx, my); points off the canvas are ignored.
func (c *canvas) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= c.w || cy >= c.h {
		return
	}
	c.m[cy][cx] |= dotBits[mx%2][my%4]
}

// line draws a segment between micro-pixels (Bresenham).
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fill paints the interior of rings with the even-odd rule, so holes stay
// empty. Rings are closed micro-pixel paths.
func (c *canvas) fill(rings [][][2]int) {
	for y := 0; y < c.h*4; y++ {
		var xs []int
		for _, r := range rings {
			for i := 0; i+1 < len(r); i++ {
				a, b := r[i], r[i+1]
				if a[1] == b[1] {
					continue
				}
				if (y >= a[1] && y < b[1]) || (y >= b[1] && y < a[1]) {
					t := float64(y-a[1]) / float64(b[1]-a[1])
					xs = append(xs, a[0]+int(t*float64(b[0]-a[0])))
				}
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, xs[i]); x <= xs[i+1]; x++ {
				c.set(x, y)
			}
		}
	}
}

// outline draws the edges of closed micro-pixel paths.
func (c *canvas) outline(rings [][][2]int) {
	for _, r := range rings {
		for i := 0; i+1 < len(r); i++ {
			c.line(r[i][0], r[i][1], r[i+1][0], r[i+1][1])
		}
	}
}

func (c *canvas) rows() []string {
	out := make([]string, c.h)
	for y := range c.h {
		row := make([]rune, c.w)
		for x := range c.w {
			if mask := c.m[y][x]; mask != 0 {
				row[x] = rune(0x2800 + int(mask))
			} else {
				row[x] = ' '
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
