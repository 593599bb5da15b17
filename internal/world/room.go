package world

// Room represents a rectangular room in the dungeon.
// The outer edge stays wall; only cells strictly inside the rectangle are carved.
type Room struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner (X1+width, Y1+height)
}

// NewRoom creates a room at (x, y) with the given size.
func NewRoom(x, y, width, height int) Room {
	return Room{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if the given point is in the carved interior of the room.
func (r Room) Contains(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

// Intersects returns true if this room's bounding box touches or overlaps another's.
// Edges are inclusive, so rooms sharing a wall intersect.
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 &&
		r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 &&
		r.Y2 >= other.Y1
}
