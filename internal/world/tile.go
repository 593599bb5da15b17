// Package world provides dungeon generation and map management.
package world

// Tile is a single map cell.
type Tile struct {
	Blocked    bool // impassable to movement
	BlockSight bool // opaque to the visibility engine
	Explored   bool // seen at least once; never reset
}

// TileWall returns a blocking, opaque tile. Every cell starts as a wall.
func TileWall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// TileFloor returns a passable, transparent tile.
func TileFloor() Tile {
	return Tile{}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}

// IsTransparent returns true if light passes through the tile.
func (t Tile) IsTransparent() bool {
	return !t.BlockSight
}

// bits packs the tile into a byte for fingerprinting.
func (t Tile) bits() byte {
	var b byte
	if t.Blocked {
		b |= 1
	}
	if t.BlockSight {
		b |= 2
	}
	return b
}
