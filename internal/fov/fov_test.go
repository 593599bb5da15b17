package fov

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openGrid creates a fully transparent, walkable grid.
func openGrid(width, height int) *Map {
	m := New(width, height)
	for y := range height {
		for x := range width {
			m.SetCell(x, y, true, true)
		}
	}
	return m
}

// walledRoom creates a grid whose border is wall and whose interior is floor.
func walledRoom(width, height int) *Map {
	m := New(width, height)
	for y := range height {
		for x := range width {
			edge := x == 0 || y == 0 || x == width-1 || y == height-1
			m.SetCell(x, y, !edge, !edge)
		}
	}
	return m
}

// randomGrid creates a grid where roughly a third of the cells are opaque.
func randomGrid(rng *rand.Rand, width, height int) *Map {
	m := New(width, height)
	for y := range height {
		for x := range width {
			open := rng.Intn(3) != 0
			m.SetCell(x, y, open, open)
		}
	}
	return m
}

func TestComputeOriginAlwaysVisible(t *testing.T) {
	m := openGrid(20, 20)
	m.Compute(5, 5, 5, true)
	assert.True(t, m.IsVisible(5, 5))

	// Even an opaque origin is lit.
	m.SetCell(5, 5, false, false)
	m.Compute(5, 5, 5, false)
	assert.True(t, m.IsVisible(5, 5))
}

func TestComputeNearbyTilesVisible(t *testing.T) {
	m := openGrid(21, 21)
	m.Compute(10, 10, 5, false)

	for _, pos := range [][2]int{{10, 7}, {10, 13}, {7, 10}, {13, 10}, {12, 12}, {10, 6}} {
		assert.Truef(t, m.IsVisible(pos[0], pos[1]), "(%d,%d) should be visible at radius 5", pos[0], pos[1])
	}
}

func TestComputeRespectsRadius(t *testing.T) {
	m := openGrid(21, 21)
	m.Compute(10, 10, 5, false)

	for y := range 21 {
		for x := range 21 {
			dx, dy := x-10, y-10
			if dx*dx+dy*dy > 25 {
				assert.Falsef(t, m.IsVisible(x, y), "(%d,%d) lies outside radius 5", x, y)
			}
		}
	}
	assert.False(t, m.IsVisible(16, 10))
	assert.False(t, m.IsVisible(14, 14), "squared distance 32 exceeds 25")
}

func TestComputeRadiusEdgeStaysDark(t *testing.T) {
	m := openGrid(21, 21)
	m.Compute(10, 10, 10, false)

	for _, pos := range [][2]int{{20, 10}, {10, 0}, {0, 10}, {10, 20}} {
		assert.Falsef(t, m.IsVisible(pos[0], pos[1]), "(%d,%d) is a ray target", pos[0], pos[1])
	}
	assert.True(t, m.IsVisible(19, 10))
	assert.True(t, m.IsVisible(10, 1))

	lit := 0
	for i := range 21 {
		for _, pos := range [][2]int{{i, 0}, {i, 20}, {0, i}, {20, i}} {
			if m.IsVisible(pos[0], pos[1]) {
				lit++
			}
		}
	}
	assert.Zero(t, lit)
	assert.Equal(t, 313, m.VisibleCount())
}

func TestComputeUnlimitedRadius(t *testing.T) {
	m := openGrid(30, 12)
	m.Compute(2, 2, 0, false)

	assert.True(t, m.IsVisible(28, 10))
	assert.True(t, m.IsVisible(28, 1))
	assert.True(t, m.IsVisible(1, 10))
	assert.False(t, m.IsVisible(29, 11), "corner is only ever a ray target")

	limited := openGrid(30, 12)
	limited.Compute(2, 2, 4, false)
	assert.Greater(t, m.VisibleCount(), limited.VisibleCount())
}

func TestComputeNegativeRadiusIsUnlimited(t *testing.T) {
	a := openGrid(25, 25)
	b := openGrid(25, 25)
	a.Compute(3, 20, 0, true)
	b.Compute(3, 20, -4, true)
	assert.Equal(t, a.cells, b.cells)
}

func TestComputeClearsPreviousResult(t *testing.T) {
	m := openGrid(20, 20)
	m.Compute(2, 2, 3, false)
	require.True(t, m.IsVisible(2, 4))

	m.Compute(17, 17, 3, false)
	assert.False(t, m.IsVisible(2, 4), "stale visibility must be discarded")
	assert.False(t, m.IsVisible(2, 2))
	assert.True(t, m.IsVisible(17, 17))
}

func TestComputeWallBlocksSight(t *testing.T) {
	newCorridor := func() *Map {
		m := openGrid(20, 5)
		for y := range 5 {
			m.SetCell(8, y, false, false)
		}
		return m
	}

	t.Run("light walls", func(t *testing.T) {
		m := newCorridor()
		m.Compute(2, 2, 0, true)
		assert.True(t, m.IsVisible(7, 2))
		assert.True(t, m.IsVisible(8, 2), "the wall face is lit")
		for y := range 5 {
			for x := 9; x < 20; x++ {
				assert.Falsef(t, m.IsVisible(x, y), "(%d,%d) is behind the wall", x, y)
			}
		}
	})

	t.Run("dark walls", func(t *testing.T) {
		m := newCorridor()
		m.Compute(2, 2, 0, false)
		assert.True(t, m.IsVisible(7, 2))
		assert.False(t, m.IsVisible(8, 2))
		assert.False(t, m.IsVisible(12, 2))
	})
}

func TestComputeLightsRoomWalls(t *testing.T) {
	m := walledRoom(7, 7)
	m.Compute(3, 3, 0, true)

	for y := range 7 {
		for x := range 7 {
			assert.Truef(t, m.IsVisible(x, y), "(%d,%d) should be visible from the room centre", x, y)
		}
	}
	assert.Equal(t, 49, m.VisibleCount())
}

func TestComputeWithoutLightWallsNeverLightsOpaque(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for range 20 {
		m := randomGrid(rng, 30, 20)
		ox, oy := rng.Intn(30), rng.Intn(20)
		m.Compute(ox, oy, 8, false)

		for y := range 20 {
			for x := range 30 {
				if x == ox && y == oy {
					continue
				}
				if m.IsVisible(x, y) {
					require.Truef(t, m.IsTransparent(x, y), "opaque (%d,%d) lit from (%d,%d)", x, y, ox, oy)
				}
			}
		}
	}
}

// clearRays walks every ray Compute casts from (ox, oy) and records the cells
// whose ray up to and including them is transparent and within range.
func clearRays(m *Map, ox, oy, radius int) map[[2]int]bool {
	xmin, ymin := max(0, ox-radius), max(0, oy-radius)
	xmax, ymax := min(m.Width(), ox+radius+1), min(m.Height(), oy+radius+1)

	reached := make(map[[2]int]bool)
	walk := func(tx, ty int) {
		ln := newLine(ox, oy, tx, ty)
		for {
			x, y, ok := ln.step()
			if !ok {
				return
			}
			dx, dy := x-ox, y-oy
			if dx*dx+dy*dy > radius*radius || !m.IsTransparent(x, y) {
				return
			}
			reached[[2]int{x, y}] = true
		}
	}
	for x := xmin; x < xmax; x++ {
		walk(x, ymin)
		walk(x, ymax-1)
	}
	for y := ymin; y < ymax; y++ {
		walk(xmin, y)
		walk(xmax-1, y)
	}
	return reached
}

func TestComputeVisibleCellsHaveClearRay(t *testing.T) {
	const radius = 8
	rng := rand.New(rand.NewSource(11))
	for range 20 {
		m := randomGrid(rng, 30, 20)
		ox, oy := rng.Intn(30), rng.Intn(20)
		m.SetCell(ox, oy, true, true)
		m.Compute(ox, oy, radius, false)

		visible := make(map[[2]int]bool)
		for y := range 20 {
			for x := range 30 {
				if m.IsVisible(x, y) {
					visible[[2]int{x, y}] = true
				}
			}
		}
		require.Equalf(t, clearRays(m, ox, oy, radius), visible, "origin (%d,%d)", ox, oy)
	}
}

func TestComputeLitWallsTouchLitFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 20 {
		m := randomGrid(rng, 30, 20)
		ox, oy := rng.Intn(30), rng.Intn(20)
		m.SetCell(ox, oy, true, true)
		m.Compute(ox, oy, 10, true)

		for y := range 20 {
			for x := range 30 {
				if !m.IsVisible(x, y) || m.IsTransparent(x, y) {
					continue
				}
				touches := false
				for ny := y - 1; ny <= y+1 && !touches; ny++ {
					for nx := x - 1; nx <= x+1; nx++ {
						if (nx != x || ny != y) && m.IsVisible(nx, ny) && m.IsTransparent(nx, ny) {
							touches = true
							break
						}
					}
				}
				require.Truef(t, touches, "lit wall (%d,%d) has no lit floor beside it", x, y)
			}
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	a := randomGrid(rand.New(rand.NewSource(3)), 40, 25)
	b := randomGrid(rand.New(rand.NewSource(3)), 40, 25)
	a.Compute(20, 12, 10, true)
	b.Compute(20, 12, 10, true)
	assert.Equal(t, a.cells, b.cells)
}

func TestIsVisibleOutOfBounds(t *testing.T) {
	m := openGrid(10, 10)
	m.Compute(0, 0, 0, true)

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {-5, -5}, {100, 3}} {
		assert.False(t, m.IsVisible(pos[0], pos[1]))
	}
}

func TestSetCellOutOfBoundsPanics(t *testing.T) {
	m := New(4, 4)
	assert.Panics(t, func() { m.SetCell(4, 0, true, true) })
	assert.Panics(t, func() { m.SetCell(0, -1, true, true) })
	assert.Panics(t, func() { m.IsTransparent(-1, 0) })
	assert.Panics(t, func() { m.Compute(9, 9, 3, true) })
}

func TestSetCellStoresProperties(t *testing.T) {
	m := New(3, 3)
	m.SetCell(1, 1, true, false)

	assert.True(t, m.IsTransparent(1, 1))
	assert.False(t, m.IsWalkable(1, 1))
	assert.False(t, m.IsTransparent(0, 0))
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 3, m.Height())
}
