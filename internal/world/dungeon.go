package world

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tombs/internal/logger"
	"github.com/samdwyer/tombs/internal/telemetry"
)

// Params controls room placement.
type Params struct {
	Width, Height int
	MaxRooms      int // placement attempts, not a guaranteed room count
	RoomMinSize   int
	RoomMaxSize   int
}

// Dungeon represents the game map.
type Dungeon struct {
	Width  int
	Height int
	Rooms  []Room // accepted rooms in placement order
	tiles  []Tile
}

// NewDungeon creates a new dungeon filled with walls.
func NewDungeon(width, height int) *Dungeon {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = TileWall()
	}

	return &Dungeon{
		Width:  width,
		Height: height,
		Rooms:  make([]Room, 0),
		tiles:  tiles,
	}
}

// Generate builds a dungeon by scattering non-overlapping rooms and joining each
// to the previous one with an L-shaped tunnel. The same rng state always yields
// the same dungeon.
func Generate(ctx context.Context, rng *rand.Rand, p Params) *Dungeon {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	d := NewDungeon(p.Width, p.Height)

	for range p.MaxRooms {
		w := p.RoomMinSize + rng.Intn(p.RoomMaxSize-p.RoomMinSize+1)
		h := p.RoomMinSize + rng.Intn(p.RoomMaxSize-p.RoomMinSize+1)
		x := rng.Intn(p.Width - w)
		y := rng.Intn(p.Height - h)

		room := NewRoom(x, y, w, h)
		if d.overlaps(room) {
			continue
		}

		d.carveRoom(room)

		if len(d.Rooms) > 0 {
			prevX, prevY := d.Rooms[len(d.Rooms)-1].Center()
			newX, newY := room.Center()
			d.carveCorridor(rng, prevX, prevY, newX, newY)
		}

		d.Rooms = append(d.Rooms, room)
	}

	fingerprint := d.Fingerprint()
	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.max_rooms", p.MaxRooms),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.String("dungeon.fingerprint", fmt.Sprintf("%016x", fingerprint)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	logger.Log.WithFields(logrus.Fields{
		"component":   "world",
		"rooms":       len(d.Rooms),
		"attempts":    p.MaxRooms,
		"fingerprint": fmt.Sprintf("%016x", fingerprint),
	}).Debug("Dungeon generated.")

	return d
}

// InBounds reports whether (x, y) lies on the map.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// At returns the tile at the given position. Panics if out of bounds.
func (d *Dungeon) At(x, y int) Tile {
	return d.tiles[d.index(x, y)]
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	return d.At(x, y).IsPassable()
}

// Set replaces the tile at the given position. Panics if out of bounds.
func (d *Dungeon) Set(x, y int, t Tile) {
	d.tiles[d.index(x, y)] = t
}

// SetExplored marks a tile as seen. Explored is never cleared.
func (d *Dungeon) SetExplored(x, y int) {
	d.tiles[d.index(x, y)].Explored = true
}

// RoomIndexAt returns the index of the room whose interior contains the position, or -1.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Fingerprint hashes the dimensions and the blocked/sight state of every tile.
// Explored flags are excluded so the value is stable for the life of a map.
func (d *Dungeon) Fingerprint() uint64 {
	buf := make([]byte, 8, 8+len(d.tiles))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(d.Width))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(d.Height))
	for _, t := range d.tiles {
		buf = append(buf, t.bits())
	}
	return xxhash.Sum64(buf)
}

func (d *Dungeon) index(x, y int) int {
	if !d.InBounds(x, y) {
		panic(fmt.Sprintf("world: tile (%d,%d) outside %dx%d map", x, y, d.Width, d.Height))
	}
	return x + y*d.Width
}

// overlaps checks a candidate against every accepted room.
func (d *Dungeon) overlaps(room Room) bool {
	for _, other := range d.Rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom opens the interior of the room, leaving its edge as wall.
func (d *Dungeon) carveRoom(room Room) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			d.tiles[d.index(x, y)] = TileFloor()
		}
	}
}

// carveCorridor joins two points with an L-shaped tunnel. The coin flip only
// changes which leg is dug first.
func (d *Dungeon) carveCorridor(rng *rand.Rand, x1, y1, x2, y2 int) {
	if rng.Intn(2) == 0 {
		d.carveHorizontalTunnel(x1, x2, y1)
		d.carveVerticalTunnel(y1, y2, x2)
	} else {
		d.carveVerticalTunnel(y1, y2, x1)
		d.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.tiles[d.index(x, y)] = TileFloor()
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.tiles[d.index(x, y)] = TileFloor()
	}
}
