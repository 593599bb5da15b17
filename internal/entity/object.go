// Package entity provides the player, monsters and their remains.
package entity

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tombs/internal/gamedata"
	"github.com/samdwyer/tombs/internal/message"
)

// CorpseGlyph is drawn for anything that has died.
const CorpseGlyph = '%'

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// Object is anything that occupies a map cell.
// Fighter and AI are nil when the object lacks that capability.
type Object struct {
	X, Y      int
	Glyph     rune
	Color     tcell.Color
	Name      string
	Blocks    bool
	Alive     bool
	Fighter   *Fighter
	AI        *AI
	Attacking *Direction // pending melee swing, nil when idle
}

// NewObject creates a dead, capability-free object.
func NewObject(x, y int, glyph rune, color tcell.Color, name string, blocks bool) *Object {
	return &Object{
		X:      x,
		Y:      y,
		Glyph:  glyph,
		Color:  color,
		Name:   name,
		Blocks: blocks,
	}
}

// NewFromDef creates a living creature from a data definition.
// A positive Speed gives it a basic AI.
func NewFromDef(def *gamedata.CreatureDef, x, y int) (*Object, error) {
	kind, ok := ParseKind(def.ID)
	if !ok {
		return nil, fmt.Errorf("unknown creature kind %q", def.ID)
	}

	o := NewObject(x, y, def.GlyphRune(), def.TCellColor(), def.Name, def.Blocks)
	o.Alive = true
	o.Fighter = &Fighter{
		MaxHP:   def.HP,
		HP:      def.HP,
		Defense: def.Defense,
		Power:   def.Power,
		Kind:    kind,
	}
	if def.Speed > 0 {
		o.AI = &AI{Speed: def.Speed, Behavior: BehaviorBasic}
	}
	return o, nil
}

// Pos returns the object's position.
func (o *Object) Pos() (int, int) {
	return o.X, o.Y
}

// SetPos moves the object without any collision check.
func (o *Object) SetPos(x, y int) {
	o.X, o.Y = x, y
}

// Translate shifts the object by (dx, dy) without any collision check.
func (o *Object) Translate(dx, dy int) {
	o.X += dx
	o.Y += dy
}

// DeltaTo returns the offset from o to other.
func (o *Object) DeltaTo(other *Object) (int, int) {
	return other.X - o.X, other.Y - o.Y
}

// DistanceTo returns the Euclidean distance to other.
func (o *Object) DistanceTo(other *Object) float64 {
	dx, dy := o.DeltaTo(other)
	return math.Hypot(float64(dx), float64(dy))
}

// Power returns the fighter's power, or 0 without a fighter.
func (o *Object) Power() int {
	if o.Fighter == nil {
		return 0
	}
	return o.Fighter.Power
}

// Defense returns the fighter's defense, or 0 without a fighter.
func (o *Object) Defense() int {
	if o.Fighter == nil {
		return 0
	}
	return o.Fighter.Defense
}

// HP returns current hit points, or 0 without a fighter.
func (o *Object) HP() int {
	if o.Fighter == nil {
		return 0
	}
	return o.Fighter.HP
}

// Heal restores hit points up to the maximum and returns the amount healed.
func (o *Object) Heal(amount int) int {
	if o.Fighter == nil || amount <= 0 {
		return 0
	}
	before := o.Fighter.HP
	o.Fighter.HP = min(o.Fighter.HP+amount, o.Fighter.MaxHP)
	return o.Fighter.HP - before
}

// TakeDamage subtracts positive damage and runs the death transition when hit
// points reach zero. Reports whether the object died from this call.
func (o *Object) TakeDamage(damage int, sink message.Sink) bool {
	if o.Fighter == nil {
		return false
	}
	if damage > 0 {
		o.Fighter.HP -= damage
	}
	if o.Fighter.HP > 0 || !o.Alive {
		return false
	}
	o.Alive = false
	o.die(sink)
	return true
}

func (o *Object) die(sink message.Sink) {
	o.Glyph = CorpseGlyph
	o.Color = tcell.ColorDarkRed

	if o.Fighter.Kind == KindPlayer {
		sink.Add("You died!", tcell.ColorRed)
		return
	}

	sink.Add(fmt.Sprintf("%s is dead!", o.Name), tcell.ColorOrange)
	o.Blocks = false
	o.Fighter = nil
	o.AI = nil
	o.Name = "remains of " + o.Name
}

// StartAttacking arms a melee swing unless one is already pending.
func (o *Object) StartAttacking(dx, dy int) {
	if o.Attacking == nil {
		o.Attacking = &Direction{DX: dx, DY: dy}
	}
}

// StopAttacking clears the pending swing.
func (o *Object) StopAttacking() {
	o.Attacking = nil
}
