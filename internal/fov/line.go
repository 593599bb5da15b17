package fov

// line walks a Bresenham line from its start cell up to, but not including,
// its end cell. The walk is done in the first octant and mapped back, so a
// tie always steps the minor axis forward.
type line struct {
	oct    octant
	x, y   int // next cell, in first-octant coordinates
	endX   int
	dx, dy int
	diff   int
}

func newLine(x0, y0, x1, y1 int) *line {
	oct := octantOf(x1-x0, y1-y0)
	sx, sy := oct.toFirst(x0, y0)
	ex, ey := oct.toFirst(x1, y1)

	dx, dy := ex-sx, ey-sy
	return &line{
		oct:  oct,
		x:    sx,
		y:    sy,
		endX: ex,
		dx:   dx,
		dy:   dy,
		diff: dy - dx,
	}
}

// step returns the next cell. ok is false once the cell before the end has
// been returned.
func (l *line) step() (x, y int, ok bool) {
	if l.x >= l.endX {
		return 0, 0, false
	}
	x, y = l.oct.fromFirst(l.x, l.y)

	if l.diff >= 0 {
		l.y++
		l.diff -= l.dx
	}
	l.diff += l.dy
	l.x++
	return x, y, true
}

// octant identifies which of the eight 45° sectors a line heads into.
// Sector 0 runs east with a shallow downward slope.
type octant int

func octantOf(dx, dy int) octant {
	var o octant
	if dy < 0 {
		dx, dy = -dx, -dy
		o += 4
	}
	if dx < 0 {
		dx, dy = dy, -dx
		o += 2
	}
	if dx < dy {
		o++
	}
	return o
}

// toFirst maps a point into sector 0.
func (o octant) toFirst(x, y int) (int, int) {
	switch o {
	case 1:
		return y, x
	case 2:
		return y, -x
	case 3:
		return -x, y
	case 4:
		return -x, -y
	case 5:
		return -y, -x
	case 6:
		return -y, x
	case 7:
		return x, -y
	}
	return x, y
}

// fromFirst is the inverse of toFirst.
func (o octant) fromFirst(x, y int) (int, int) {
	switch o {
	case 1:
		return y, x
	case 2:
		return -y, x
	case 3:
		return -x, y
	case 4:
		return -x, -y
	case 5:
		return -y, -x
	case 6:
		return y, -x
	case 7:
		return x, -y
	}
	return x, y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
