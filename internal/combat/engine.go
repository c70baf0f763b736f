package combat

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/fantasyquest/internal/entity"
	"github.com/samdwyer/fantasyquest/internal/telemetry"
)

// Driver is the interactive side of an encounter: it picks actions and
// presents results.
type Driver interface {
	ChooseAction(ctx context.Context, enc *Encounter) (Action, error)
	TurnResolved(enc *Encounter, result TurnResult)
	ShowStatus(player *entity.Player)
}

// Run loops until the encounter ends. After every turn that does not end it,
// the driver is asked to show the player's status. An error from the driver
// aborts the encounter and is returned with OutcomeOngoing.
func Run(ctx context.Context, enc *Encounter, d Driver) (Outcome, error) {
	tracer := telemetry.Tracer("combat")
	_, startSpan := tracer.Start(ctx, "combat.start")
	startSpan.SetAttributes(
		attribute.String("enemy", enc.Enemy.Name),
		attribute.Int("enemy_health", enc.Enemy.Health),
		attribute.Int("player_health", enc.Player.Health),
	)
	startSpan.End()

	for !enc.Outcome().Ended() {
		action, err := d.ChooseAction(ctx, enc)
		if err != nil {
			endCombat(ctx, enc, err)
			return OutcomeOngoing, err
		}

		result := enc.Resolve(action)
		traceTurn(ctx, enc, result)
		d.TurnResolved(enc, result)

		if !result.Outcome.Ended() {
			d.ShowStatus(enc.Player)
		}
	}

	endCombat(ctx, enc, nil)
	return enc.Outcome(), nil
}

// traceTurn records a span for one resolved turn.
func traceTurn(ctx context.Context, enc *Encounter, result TurnResult) {
	_, span := telemetry.Tracer("combat").Start(ctx, "combat.turn")
	defer span.End()

	span.SetAttributes(
		attribute.String("action", result.Action.String()),
		attribute.Int("turn", enc.Turns()),
		attribute.String("outcome", result.Outcome.String()),
	)
	if result.DamageDealt > 0 {
		span.SetAttributes(attribute.Int("damage_dealt", result.DamageDealt))
	}
	if result.Retaliated {
		span.SetAttributes(attribute.Int("damage_taken", result.DamageTaken))
	}
	if result.PotionUsed {
		span.SetAttributes(attribute.Int("healing", result.Healed))
	}
}

// endCombat records the final span for an encounter.
func endCombat(ctx context.Context, enc *Encounter, err error) {
	_, span := telemetry.Tracer("combat").Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", enc.Outcome().String()),
		attribute.Int("turns_taken", enc.Turns()),
		attribute.Int("player_health_remaining", enc.Player.Health),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
