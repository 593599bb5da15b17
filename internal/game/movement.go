package game

import "math"

// IsBlocked reports whether (x, y) is a wall or holds a blocking object.
// Panics if the position is off the map.
func (g *Game) IsBlocked(x, y int) bool {
	return g.isBlockedFor(-1, x, y)
}

// isBlockedFor is IsBlocked ignoring object id, so a mover never blocks itself.
func (g *Game) isBlockedFor(id, x, y int) bool {
	if g.Dungeon.At(x, y).Blocked {
		return true
	}
	for i, o := range g.Objects {
		if i != id && o.Blocks && o.X == x && o.Y == y {
			return true
		}
	}
	return false
}

// MoveBy moves object id by (dx, dy) unless the destination is blocked.
// A blocked move is a silent no-op. Reports whether the object moved.
func (g *Game) MoveBy(id, dx, dy int) bool {
	o := g.Objects.At(id)
	if g.isBlockedFor(id, o.X+dx, o.Y+dy) {
		return false
	}
	o.Translate(dx, dy)
	return true
}

// MoveTowards takes one step from object id towards (targetX, targetY): the
// offset is normalised to unit length and each axis rounded. There is no
// detour logic, so an object can stay stuck behind a wall indefinitely.
func (g *Game) MoveTowards(id, targetX, targetY int) bool {
	o := g.Objects.At(id)
	dx := float64(targetX - o.X)
	dy := float64(targetY - o.Y)

	distance := math.Hypot(dx, dy)
	if distance == 0 {
		return false
	}

	stepX := int(math.Round(dx / distance))
	stepY := int(math.Round(dy / distance))
	return g.MoveBy(id, stepX, stepY)
}
