package game

import (
	"slices"
	"strings"

	"github.com/samdwyer/tombs/internal/entity"
	"github.com/samdwyer/tombs/internal/world"
)

// IsVisible reports whether (x, y) is currently in view. Off-map cells are not.
func (g *Game) IsVisible(x, y int) bool {
	return g.FOV.IsVisible(x, y)
}

// IsExplored reports whether (x, y) has ever been in view. Off-map cells have not.
func (g *Game) IsExplored(x, y int) bool {
	if !g.Dungeon.InBounds(x, y) {
		return false
	}
	return g.Dungeon.At(x, y).Explored
}

// Tile returns the map tile at (x, y). Panics if off the map.
func (g *Game) Tile(x, y int) world.Tile {
	return g.Dungeon.At(x, y)
}

// DrawList returns the objects on visible cells in draw order: dead before
// alive, then non-blocking before blocking, otherwise list order. Drawing in
// this order keeps living blockers on top of corpses.
func (g *Game) DrawList() []*entity.Object {
	visible := make([]*entity.Object, 0, len(g.Objects))
	for _, o := range g.Objects {
		if g.FOV.IsVisible(o.X, o.Y) {
			visible = append(visible, o)
		}
	}

	slices.SortStableFunc(visible, func(a, b *entity.Object) int {
		if c := boolRank(a.Alive) - boolRank(b.Alive); c != 0 {
			return c
		}
		return boolRank(a.Blocks) - boolRank(b.Blocks)
	})
	return visible
}

// NamesAt returns the comma-separated names of the objects at a visible cell.
func (g *Game) NamesAt(x, y int) string {
	if !g.FOV.IsVisible(x, y) {
		return ""
	}
	var names []string
	for _, o := range g.Objects {
		if o.X == x && o.Y == y {
			names = append(names, o.Name)
		}
	}
	return strings.Join(names, ", ")
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
