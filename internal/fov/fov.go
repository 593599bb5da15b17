// Package fov computes field of view on a grid by circular ray casting.
//
// The grid is independent of the dungeon: callers copy transparency and
// walkability in once with SetCell and then call Compute whenever the viewer
// moves. Every Compute discards the previous result.
package fov

import "fmt"

// Cell is the per-position state of the visibility grid.
type Cell struct {
	Transparent bool
	Walkable    bool
	InFOV       bool
}

// Map is a visibility grid.
type Map struct {
	width  int
	height int
	cells  []Cell
}

// New creates a w×h grid of opaque, unwalkable, unseen cells.
func New(width, height int) *Map {
	return &Map{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the grid width.
func (m *Map) Width() int { return m.width }

// Height returns the grid height.
func (m *Map) Height() int { return m.height }

// SetCell records the static properties of a cell and clears its visibility.
func (m *Map) SetCell(x, y int, transparent, walkable bool) {
	c := m.cell(x, y)
	c.Transparent = transparent
	c.Walkable = walkable
	c.InFOV = false
}

// IsVisible reports whether (x, y) was lit by the last Compute.
// Positions off the grid are never visible.
func (m *Map) IsVisible(x, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}
	return m.cells[x+y*m.width].InFOV
}

// IsTransparent reports whether light passes through (x, y).
func (m *Map) IsTransparent(x, y int) bool {
	return m.cell(x, y).Transparent
}

// IsWalkable reports whether (x, y) was marked walkable.
func (m *Map) IsWalkable(x, y int) bool {
	return m.cell(x, y).Walkable
}

// VisibleCount returns the number of lit cells.
func (m *Map) VisibleCount() int {
	n := 0
	for _, c := range m.cells {
		if c.InFOV {
			n++
		}
	}
	return n
}

// Compute recomputes visibility from (ox, oy).
//
// A ray is cast from the origin towards every cell on the perimeter of the
// bounding box around it. A ray stops one cell short of its target, so the
// perimeter is only lit where another ray crosses it. The box is clipped to maxRadius when maxRadius > 0; otherwise
// the whole grid is used and range is unlimited. A ray stops at the first
// opaque cell. With lightWalls that opaque cell is lit too, and a post-pass
// lights wall corners that rays tend to miss.
func (m *Map) Compute(ox, oy, maxRadius int, lightWalls bool) {
	if !m.inBounds(ox, oy) {
		panic(fmt.Sprintf("fov: origin (%d,%d) outside %dx%d grid", ox, oy, m.width, m.height))
	}

	xmin, ymin, xmax, ymax := 0, 0, m.width, m.height
	if maxRadius > 0 {
		xmin = max(0, ox-maxRadius)
		ymin = max(0, oy-maxRadius)
		xmax = min(m.width, ox+maxRadius+1)
		ymax = min(m.height, oy+maxRadius+1)
	}

	for i := range m.cells {
		m.cells[i].InFOV = false
	}

	r2 := 0
	if maxRadius > 0 {
		r2 = maxRadius * maxRadius
	}

	// Walk the perimeter once: top, right, bottom, left.
	for x := xmin; x < xmax; x++ {
		m.castRay(ox, oy, x, ymin, r2, lightWalls)
	}
	for y := ymin + 1; y < ymax; y++ {
		m.castRay(ox, oy, xmax-1, y, r2, lightWalls)
	}
	for x := xmax - 2; x >= xmin; x-- {
		m.castRay(ox, oy, x, ymax-1, r2, lightWalls)
	}
	for y := ymax - 2; y > ymin; y-- {
		m.castRay(ox, oy, xmin, y, r2, lightWalls)
	}

	if lightWalls {
		m.postProcess(xmin, ymin, ox, oy, -1, -1)
		m.postProcess(ox, ymin, xmax-1, oy, 1, -1)
		m.postProcess(xmin, oy, ox, ymax-1, -1, 1)
		m.postProcess(ox, oy, xmax-1, ymax-1, 1, 1)
	}
}

// castRay lights cells along the line from (xo, yo) towards (xd, yd). The
// line starts at the origin and excludes the target.
// r2 is the squared range limit, 0 for none.
func (m *Map) castRay(xo, yo, xd, yd, r2 int, lightWalls bool) {
	inside := false
	blocked := false

	if m.inBounds(xo, yo) {
		inside = true
		m.cells[xo+yo*m.width].InFOV = true
	}

	ln := newLine(xo, yo, xd, yd)
	for {
		x, y, ok := ln.step()
		if !ok {
			return
		}
		if r2 > 0 {
			dx, dy := x-xo, y-yo
			if dx*dx+dy*dy > r2 {
				return
			}
		}
		if !m.inBounds(x, y) {
			if inside {
				return
			}
			continue
		}
		inside = true

		c := &m.cells[x+y*m.width]
		if blocked {
			return
		}
		if !c.Transparent {
			blocked = true
		}
		if lightWalls || !blocked {
			c.InFOV = true
		}
	}
}

// postProcess lights opaque cells next to lit floor inside one quadrant
// [x0,x1]×[y0,y1]. (dx, dy) points away from the origin.
func (m *Map) postProcess(x0, y0, x1, y1, dx, dy int) {
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			c := m.cells[cx+cy*m.width]
			if !c.InFOV || !c.Transparent {
				continue
			}

			x2, y2 := cx+dx, cy+dy
			inX := x2 >= x0 && x2 <= x1
			inY := y2 >= y0 && y2 <= y1
			if inX {
				m.lightWall(x2, cy)
			}
			if inY {
				m.lightWall(cx, y2)
			}
			if inX && inY {
				m.lightWall(x2, y2)
			}
		}
	}
}

func (m *Map) lightWall(x, y int) {
	c := &m.cells[x+y*m.width]
	if !c.Transparent {
		c.InFOV = true
	}
}

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *Map) cell(x, y int) *Cell {
	if !m.inBounds(x, y) {
		panic(fmt.Sprintf("fov: cell (%d,%d) outside %dx%d grid", x, y, m.width, m.height))
	}
	return &m.cells[x+y*m.width]
}
