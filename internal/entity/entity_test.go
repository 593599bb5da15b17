package entity

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/tombs/internal/gamedata"
	"github.com/samdwyer/tombs/internal/message"
)

func newOrc(x, y int) *Object {
	o := NewObject(x, y, 'o', tcell.ColorGreen, "orc", true)
	o.Alive = true
	o.Fighter = &Fighter{MaxHP: 10, HP: 10, Defense: 0, Power: 3, Kind: KindOrc}
	o.AI = &AI{Speed: 5}
	return o
}

func newPlayer(x, y int) *Object {
	o := NewObject(x, y, '@', tcell.ColorWhite, "player", false)
	o.Alive = true
	o.Fighter = &Fighter{MaxHP: 30, HP: 30, Defense: 2, Power: 5, Kind: KindPlayer}
	return o
}

func TestNewFromDef(t *testing.T) {
	registry := gamedata.MustLoadCreatureRegistry()

	troll, err := NewFromDef(registry.GetByID("troll"), 4, 7)
	require.NoError(t, err)
	assert.Equal(t, 'T', troll.Glyph)
	assert.Equal(t, "troll", troll.Name)
	assert.True(t, troll.Alive)
	assert.True(t, troll.Blocks)
	require.NotNil(t, troll.Fighter)
	assert.Equal(t, Fighter{MaxHP: 16, HP: 16, Defense: 1, Power: 4, Kind: KindTroll}, *troll.Fighter)
	require.NotNil(t, troll.AI)
	assert.Equal(t, 8, troll.AI.Speed)
	assert.Equal(t, BehaviorBasic, troll.AI.Behavior)

	player, err := NewFromDef(registry.Player(), 1, 1)
	require.NoError(t, err)
	assert.Nil(t, player.AI, "the player has no AI")
	assert.Equal(t, KindPlayer, player.Fighter.Kind)
	assert.Nil(t, player.Attacking)

	_, err = NewFromDef(&gamedata.CreatureDef{ID: "dragon"}, 0, 0)
	assert.Error(t, err)
}

func TestTakeDamageKillsMonster(t *testing.T) {
	var log message.Log
	orc := newOrc(3, 3)

	died := orc.TakeDamage(10, &log)

	assert.True(t, died)
	assert.False(t, orc.Alive)
	assert.False(t, orc.Blocks)
	assert.Nil(t, orc.Fighter)
	assert.Nil(t, orc.AI)
	assert.Equal(t, "remains of orc", orc.Name)
	assert.Equal(t, CorpseGlyph, orc.Glyph)
	assert.Equal(t, tcell.ColorDarkRed, orc.Color)
	require.Equal(t, 1, log.Len())
	assert.Equal(t, message.Message{Text: "orc is dead!", Color: tcell.ColorOrange}, log.Entries()[0])
}

func TestTakeDamagePlayerDeath(t *testing.T) {
	var log message.Log
	player := newPlayer(1, 1)

	assert.True(t, player.TakeDamage(35, &log))
	assert.False(t, player.Alive)
	assert.Equal(t, CorpseGlyph, player.Glyph)
	assert.Equal(t, tcell.ColorDarkRed, player.Color)
	assert.Equal(t, "player", player.Name, "the player keeps its name")
	require.NotNil(t, player.Fighter, "the player keeps its fighter")
	assert.Equal(t, -5, player.Fighter.HP)
	assert.Equal(t, []message.Message{{Text: "You died!", Color: tcell.ColorRed}}, log.Entries())

	// A second blow does not repeat the death transition.
	assert.False(t, player.TakeDamage(3, &log))
	assert.Equal(t, 1, log.Len())
}

func TestTakeDamageNonPositive(t *testing.T) {
	var log message.Log
	orc := newOrc(0, 0)

	assert.False(t, orc.TakeDamage(0, &log))
	assert.False(t, orc.TakeDamage(-4, &log))
	assert.Equal(t, 10, orc.HP())
	assert.Equal(t, 0, log.Len())
}

func TestHealCapsAtMax(t *testing.T) {
	player := newPlayer(0, 0)
	player.Fighter.HP = 20

	assert.Equal(t, 5, player.Heal(5))
	assert.Equal(t, 25, player.HP())
	assert.Equal(t, 5, player.Heal(100))
	assert.Equal(t, 30, player.HP())
	assert.Equal(t, 0, player.Heal(-3))

	rock := NewObject(0, 0, '*', tcell.ColorGray, "rock", true)
	assert.Equal(t, 0, rock.Heal(5))
}

func TestStatAccessorsWithoutFighter(t *testing.T) {
	rock := NewObject(0, 0, '*', tcell.ColorGray, "rock", true)
	assert.Equal(t, 0, rock.Power())
	assert.Equal(t, 0, rock.Defense())
	assert.Equal(t, 0, rock.HP())
	assert.False(t, rock.TakeDamage(5, &message.Log{}))
}

func TestStartAttackingKeepsPendingSwing(t *testing.T) {
	player := newPlayer(0, 0)

	player.StartAttacking(0, -1)
	player.StartAttacking(1, 0)
	require.NotNil(t, player.Attacking)
	assert.Equal(t, Direction{DX: 0, DY: -1}, *player.Attacking)

	player.StopAttacking()
	assert.Nil(t, player.Attacking)
	player.StartAttacking(1, 0)
	assert.Equal(t, Direction{DX: 1, DY: 0}, *player.Attacking)
}

func TestDeltaAndDistance(t *testing.T) {
	a := newPlayer(1, 1)
	b := newOrc(4, 5)

	dx, dy := a.DeltaTo(b)
	assert.Equal(t, 3, dx)
	assert.Equal(t, 4, dy)
	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-9)

	a.Translate(2, -1)
	x, y := a.Pos()
	assert.Equal(t, 3, x)
	assert.Equal(t, 0, y)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "player", KindPlayer.String())
	assert.Equal(t, "orc", KindOrc.String())
	assert.Equal(t, "troll", KindTroll.String())
	assert.Equal(t, "unknown", Kind(99).String())

	k, ok := ParseKind("troll")
	assert.True(t, ok)
	assert.Equal(t, KindTroll, k)
	_, ok = ParseKind("ghost")
	assert.False(t, ok)
}

func TestListPair(t *testing.T) {
	l := List{newPlayer(0, 0), newOrc(1, 0), newOrc(2, 0)}

	a, b := l.Pair(2, 0)
	assert.Same(t, l[2], a)
	assert.Same(t, l[0], b)
	assert.Same(t, l[0], l.Player())

	// Mutations through the pair land in the list.
	a.Fighter.HP = 1
	assert.Equal(t, 1, l[2].Fighter.HP)
}

func TestListPairPanics(t *testing.T) {
	l := List{newPlayer(0, 0), newOrc(1, 0)}

	assert.Panics(t, func() { l.Pair(1, 1) })
	assert.Panics(t, func() { l.Pair(0, 2) })
	assert.Panics(t, func() { l.Pair(-1, 0) })
	assert.Panics(t, func() { l.At(5) })
}
