// Package game owns a world session: the dungeon, visibility, objects and the
// turn scheduler that advances them.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tombs/internal/combat"
	"github.com/samdwyer/tombs/internal/entity"
	"github.com/samdwyer/tombs/internal/fov"
	"github.com/samdwyer/tombs/internal/gamedata"
	"github.com/samdwyer/tombs/internal/logger"
	"github.com/samdwyer/tombs/internal/message"
	"github.com/samdwyer/tombs/internal/telemetry"
	"github.com/samdwyer/tombs/internal/world"
)

// WelcomeText is the first message of every game.
const WelcomeText = "Welcome stranger! Prepare to perish in the Tombs of the Ancient Kings."

// ErrNoSpawnableCreatures means a room rolled monsters but no creature
// definition has a positive spawn weight.
var ErrNoSpawnableCreatures = errors.New("no spawnable creatures")

// Game holds the entire state of one world. It is not safe for concurrent
// use; callers advance it from a single goroutine.
type Game struct {
	ID       uuid.UUID
	Seed     int64 // resolved seed, never 0
	Dungeon  *world.Dungeon
	FOV      *fov.Map
	Objects  entity.List // index 0 is the player
	Messages message.Log
	Tick     uint64

	cfg         Config
	rng         *rand.Rand
	creatures   *gamedata.CreatureRegistry
	prevX       int // viewer position at the last visibility refresh
	prevY       int
	attackTicks int
}

// New creates a world from cfg: generates the dungeon, mirrors it into the
// visibility grid, places the player in the first room and monsters in the rest.
func New(ctx context.Context, cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	creatures, err := gamedata.LoadCreatureRegistry()
	if err != nil {
		return nil, fmt.Errorf("load creatures: %w", err)
	}
	return NewWithCreatures(ctx, cfg, creatures)
}

// NewWithCreatures is New with an explicit creature registry.
func NewWithCreatures(ctx context.Context, cfg Config, creatures *gamedata.CreatureRegistry) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.new")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		ID:        uuid.New(),
		Seed:      seed,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		creatures: creatures,
		prevX:     -1,
		prevY:     -1,
	}

	g.Dungeon = world.Generate(ctx, g.rng, cfg.DungeonParams())
	if len(g.Dungeon.Rooms) == 0 {
		return nil, errors.New("dungeon generation placed no rooms")
	}

	g.FOV = visibilityFor(g.Dungeon)

	if err := g.populate(); err != nil {
		return nil, err
	}

	g.Messages.Add(WelcomeText, tcell.ColorRed)

	span.SetAttributes(
		attribute.String("world.id", g.ID.String()),
		attribute.Int64("world.seed", seed),
		attribute.Int("world.rooms", len(g.Dungeon.Rooms)),
		attribute.Int("world.objects", len(g.Objects)),
	)
	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"world":     g.ID.String(),
		"seed":      seed,
		"rooms":     len(g.Dungeon.Rooms),
		"monsters":  len(g.Objects) - 1,
	}).Info("World created.")

	return g, nil
}

// visibilityFor mirrors the dungeon's transparency and walkability into a new
// visibility grid of the same size.
func visibilityFor(d *world.Dungeon) *fov.Map {
	m := fov.New(d.Width, d.Height)
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			t := d.At(x, y)
			m.SetCell(x, y, t.IsTransparent(), t.IsPassable())
		}
	}
	return m
}

// populate places the player at the centre of room 0 and rolls monsters for
// every later room. Monsters may land on the same cell.
func (g *Game) populate() error {
	player, err := entity.NewFromDef(g.creatures.Player(), 0, 0)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	g.Objects = entity.List{player}

	for i, room := range g.Dungeon.Rooms {
		if i == 0 {
			player.SetPos(room.Center())
			continue
		}

		count := g.rng.Intn(g.cfg.MaxMonstersPerRoom + 1)
		for range count {
			x := room.X1 + 1 + g.rng.Intn(room.X2-room.X1-1)
			y := room.Y1 + 1 + g.rng.Intn(room.Y2-room.Y1-1)

			def := g.creatures.SpawnRandom(g.rng)
			if def == nil {
				return fmt.Errorf("populate room %d: %w", i, ErrNoSpawnableCreatures)
			}
			monster, err := entity.NewFromDef(def, x, y)
			if err != nil {
				return fmt.Errorf("create monster in room %d: %w", i, err)
			}
			g.Objects = append(g.Objects, monster)
		}
	}
	return nil
}

// Config returns the configuration the world was built with.
func (g *Game) Config() Config {
	return g.cfg
}

// Player returns the player object.
func (g *Game) Player() *entity.Object {
	return g.Objects.Player()
}

// State reports whether the player is still alive.
func (g *Game) State() State {
	if g.Player().Alive {
		return StatePlaying
	}
	return StateDead
}

// Update advances the world by one tick:
//  1. refresh visibility if the player moved since the last tick
//  2. let every monster with an AI act, in list order, while the player lives
//  3. resolve the player's pending melee swing
//  4. increment the tick counter
func (g *Game) Update(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.update")
	defer span.End()

	player := g.Player()
	wasAlive := player.Alive

	refreshed := false
	if player.X != g.prevX || player.Y != g.prevY {
		g.refreshVisibility()
		refreshed = true
	}
	g.prevX, g.prevY = player.X, player.Y

	if player.Alive {
		for id := 1; id < len(g.Objects); id++ {
			g.takeTurn(ctx, id)
		}
	}

	attacks := g.resolvePlayerAttack(ctx)

	span.SetAttributes(
		attribute.String("world.id", g.ID.String()),
		attribute.Int64("tick", int64(g.Tick)),
		attribute.Bool("fov_recomputed", refreshed),
		attribute.Int("attacks", attacks),
	)

	if wasAlive && !player.Alive {
		span.SetAttributes(attribute.Bool("player_died", true))
		logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"world":     g.ID.String(),
			"tick":      g.Tick,
		}).Info("Player died.")
	}

	g.Tick++
}

// refreshVisibility recomputes the visibility grid around the player and
// marks every lit tile as explored.
func (g *Game) refreshVisibility() {
	player := g.Player()
	g.FOV.Compute(player.X, player.Y, g.cfg.FOVRadius, g.cfg.LightWalls)

	for y := 0; y < g.Dungeon.Height; y++ {
		for x := 0; x < g.Dungeon.Width; x++ {
			if g.FOV.IsVisible(x, y) {
				g.Dungeon.SetExplored(x, y)
			}
		}
	}
}

// resolvePlayerAttack hits every living monster in the swing's target cell and
// ages the swing. Returns the number of attacks made.
func (g *Game) resolvePlayerAttack(ctx context.Context) int {
	player := g.Player()
	if player.Attacking == nil {
		return 0
	}

	tx, ty := player.X+player.Attacking.DX, player.Y+player.Attacking.DY
	attacks := 0
	for id := 1; id < len(g.Objects); id++ {
		target := g.Objects[id]
		if !target.Alive || target.X != tx || target.Y != ty {
			continue
		}
		source, victim := g.Objects.Pair(entity.PlayerID, id)
		combat.Attack(ctx, source, victim, &g.Messages)
		attacks++
	}

	g.attackTicks++
	if g.attackTicks >= g.cfg.AttackTicks {
		g.attackTicks = 0
		player.StopAttacking()
	}
	return attacks
}
