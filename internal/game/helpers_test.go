package game

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/tombs/internal/entity"
	"github.com/samdwyer/tombs/internal/gamedata"
	"github.com/samdwyer/tombs/internal/world"
)

// newArena builds a world whose map is one open rectangle ringed by wall,
// with only the player placed at (px, py).
func newArena(t *testing.T, width, height, px, py int) *Game {
	t.Helper()

	cfg, err := DefaultConfig()
	require.NoError(t, err)
	cfg.Seed = 1

	d := world.NewDungeon(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			d.Set(x, y, world.TileFloor())
		}
	}

	g := &Game{
		ID:        uuid.New(),
		Seed:      cfg.Seed,
		Dungeon:   d,
		FOV:       visibilityFor(d),
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		creatures: gamedata.MustLoadCreatureRegistry(),
		prevX:     -1,
		prevY:     -1,
	}

	player, err := entity.NewFromDef(g.creatures.Player(), px, py)
	require.NoError(t, err)
	g.Objects = entity.List{player}
	return g
}

// addCreature places a creature from creatures.json and returns its id.
func addCreature(t *testing.T, g *Game, id string, x, y int) int {
	t.Helper()

	def := g.creatures.GetByID(id)
	require.NotNil(t, def, "creature %q", id)
	o, err := entity.NewFromDef(def, x, y)
	require.NoError(t, err)
	g.Objects = append(g.Objects, o)
	return len(g.Objects) - 1
}

// wall turns (x, y) into wall in both the map and the visibility grid.
func wall(g *Game, x, y int) {
	g.Dungeon.Set(x, y, world.TileWall())
	g.FOV.SetCell(x, y, false, false)
}

func newSeeded(t *testing.T, seed int64) *Game {
	t.Helper()

	cfg, err := DefaultConfig()
	require.NoError(t, err)
	cfg.Seed = seed
	g, err := New(t.Context(), cfg)
	require.NoError(t, err)
	return g
}
