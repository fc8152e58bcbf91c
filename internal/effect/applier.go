package effect

import (
	"context"
	"fmt"

	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/logger"
	"github.com/Neworly/one-year-one-code/internal/metrics"
)

// Applier applies parsed ability texts to creatures in a party
type Applier struct {
	parser   *Parser
	registry *Registry
}

// NewApplier creates an applier. A nil registry uses NewRegistry().
func NewApplier(parser *Parser, registry *Registry) *Applier {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Applier{parser: parser, registry: registry}
}

// Apply parses abilityText and applies every effect to the party members named target.
//
// Nothing is mutated unless the target is in the party, the text parses, and every
// handled value validates. Effects without a handler are reported as OutcomeUnhandled.
func (a *Applier) Apply(ctx context.Context, abilityText string, party *domain.Party, target string) ([]Outcome, error) {
	log := logger.FromContext(ctx)

	if !party.Has(target) {
		log.Warn(LogMsgTargetNotInParty, "target", target)
		return nil, fmt.Errorf(ErrFmtTargetNotInParty, domain.ErrTargetNotInParty, target)
	}

	pairs, err := a.parser.Parse(abilityText)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtParseAbility, abilityText, err)
	}

	for _, pair := range pairs {
		if h := a.registry.GetHandler(pair.Name); h != nil {
			if err := h.Validate(pair.Value); err != nil {
				return nil, err
			}
		}
	}

	var outcomes []Outcome
	for _, pair := range pairs {
		h := a.registry.GetHandler(pair.Name)
		for _, member := range party.Members {
			if member.Name != target {
				continue
			}

			var out Outcome
			if h == nil {
				out = Outcome{Effect: pair.Name, Value: pair.Value, Target: member.Name, Kind: OutcomeUnhandled}
			} else {
				out = h.Apply(member, pair.Value)
			}
			logOutcome(ctx, out)
			metrics.EffectsApplied.WithLabelValues(out.Effect, string(out.Kind)).Inc()
			outcomes = append(outcomes, out)
		}
	}

	return outcomes, nil
}

func logOutcome(ctx context.Context, out Outcome) {
	log := logger.FromContext(ctx)
	switch out.Kind {
	case OutcomeHealed:
		log.Info(LogMsgHealed, "target", out.Target, "amount", out.Amount)
	case OutcomeCured:
		log.Info(LogMsgCured, "target", out.Target, "effect", out.Effect)
	case OutcomeNoEffect:
		if out.Effect == domain.EffectHeal {
			log.Info(LogMsgHealNoEffect, "target", out.Target)
		} else {
			log.Info(LogMsgStatusNoEffect, "target", out.Target)
		}
	case OutcomeUnhandled:
		log.Warn(LogMsgUnhandledEffect, "effect", out.Effect, "value", out.Value)
	}
}
