// Package combat resolves melee attacks between objects.
package combat

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tombs/internal/entity"
	"github.com/samdwyer/tombs/internal/logger"
	"github.com/samdwyer/tombs/internal/message"
	"github.com/samdwyer/tombs/internal/telemetry"
)

// Outcome classifies a resolved attack.
type Outcome int

const (
	// OutcomeNoEffect means defense absorbed the blow; hit points are untouched.
	OutcomeNoEffect Outcome = iota
	// OutcomeHit means the target lost hit points and survived.
	OutcomeHit
	// OutcomeKilled means the hit took the target to zero or below.
	OutcomeKilled
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoEffect:
		return "no_effect"
	case OutcomeHit:
		return "hit"
	case OutcomeKilled:
		return "killed"
	default:
		return "unknown"
	}
}

// Result contains the outcome of one attack.
type Result struct {
	Outcome Outcome
	Damage  int // hit points removed; 0 for OutcomeNoEffect
}

// Damage returns attacker power minus target defense. A missing fighter
// counts as zero on either side. The value may be zero or negative.
func Damage(attacker, target *entity.Object) int {
	return attacker.Power() - target.Defense()
}

// Attack resolves a melee blow from attacker to target and reports it to sink.
// Non-positive damage is reported as having no effect and never reaches the
// target's hit points.
func Attack(ctx context.Context, attacker, target *entity.Object, sink message.Sink) Result {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.attack")
	defer span.End()

	// Captured up front; a slain monster is renamed to its remains.
	targetName := target.Name
	damage := Damage(attacker, target)
	result := Result{Outcome: OutcomeNoEffect}

	if damage > 0 {
		sink.Add(fmt.Sprintf("%s attacks %s for %d hit points.", attacker.Name, targetName, damage), tcell.ColorWhite)
		result.Damage = damage
		result.Outcome = OutcomeHit
		if target.TakeDamage(damage, sink) {
			result.Outcome = OutcomeKilled
		}
	} else {
		sink.Add(fmt.Sprintf("%s attacks %s but it has no effect!", attacker.Name, targetName), tcell.ColorWhite)
	}

	span.SetAttributes(
		attribute.String("attacker", attacker.Name),
		attribute.String("target", targetName),
		attribute.Int("damage", result.Damage),
		attribute.String("outcome", result.Outcome.String()),
	)
	logger.Log.WithFields(logrus.Fields{
		"component": "combat",
		"attacker":  attacker.Name,
		"target":    targetName,
		"damage":    result.Damage,
		"outcome":   result.Outcome.String(),
	}).Debug("Attack resolved.")

	return result
}
