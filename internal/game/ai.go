package game

import (
	"context"

	"github.com/samdwyer/tombs/internal/combat"
	"github.com/samdwyer/tombs/internal/entity"
)

// takeTurn runs the AI of object id if it has one.
func (g *Game) takeTurn(ctx context.Context, id int) {
	ai := g.Objects.At(id).AI
	if ai == nil || ai.Speed <= 0 {
		return
	}
	if g.Tick%uint64(ai.Speed) != 0 {
		return
	}

	switch ai.Behavior {
	case entity.BehaviorBasic:
		g.basicTurn(ctx, id)
	}
}

// basicTurn: if the player can see the monster, the monster can see the
// player. Adjacent (diagonals included) means attack, otherwise step closer.
func (g *Game) basicTurn(ctx context.Context, id int) {
	monster, player := g.Objects.Pair(id, entity.PlayerID)
	if !g.FOV.IsVisible(monster.X, monster.Y) || player.HP() <= 0 {
		return
	}

	dx, dy := monster.DeltaTo(player)
	if abs(dx) <= 1 && abs(dy) <= 1 {
		combat.Attack(ctx, monster, player, &g.Messages)
		return
	}
	g.MoveTowards(id, player.X, player.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
