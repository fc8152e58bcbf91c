package effect

import (
	"fmt"

	"github.com/Neworly/one-year-one-code/internal/domain"
)

// OutcomeKind classifies what applying an effect did to a creature
type OutcomeKind string

const (
	OutcomeHealed    OutcomeKind = "healed"
	OutcomeCured     OutcomeKind = "cured"
	OutcomeNoEffect  OutcomeKind = "no_effect"
	OutcomeUnhandled OutcomeKind = "unhandled"
)

// Outcome is the result of applying a single effect pair to a single creature
type Outcome struct {
	Effect string      `json:"effect"`
	Value  string      `json:"value"`
	Target string      `json:"target"`
	Kind   OutcomeKind `json:"kind"`
	Amount int         `json:"amount,omitempty"`
}

// Handler applies one named effect
type Handler interface {
	// Name returns the effect name this handler processes, e.g. "Heal"
	Name() string

	// Validate checks the effect value before any creature is touched
	Validate(value string) error

	// Apply mutates the target and reports what happened. Value has passed Validate.
	Apply(target *domain.Creature, value string) Outcome
}

// Registry maps effect names to handlers
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates a registry with the default Heal and Status handlers
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]Handler)}
	r.Register(&HealHandler{})
	r.Register(&StatusHandler{})
	return r
}

// Register adds or replaces the handler for h.Name()
func (r *Registry) Register(h Handler) {
	r.handlers[h.Name()] = h
}

// GetHandler returns the handler for the effect name, or nil
func (r *Registry) GetHandler(name string) Handler {
	return r.handlers[name]
}

// HealHandler restores health, clamped to max health
type HealHandler struct{}

// Name returns "Heal"
func (h *HealHandler) Name() string { return domain.EffectHeal }

// Validate requires a decimal magnitude
func (h *HealHandler) Validate(value string) error {
	if _, err := ParseMagnitude(value); err != nil {
		return fmt.Errorf(ErrFmtInvalidValue, h.Name(), err)
	}
	return nil
}

// Apply heals the target unless it is already at or above max health
func (h *HealHandler) Apply(target *domain.Creature, value string) Outcome {
	out := Outcome{Effect: h.Name(), Value: value, Target: target.Name, Kind: OutcomeNoEffect}

	stats := &target.Stats
	if stats.Health >= stats.MaxHealth {
		return out
	}

	amount, _ := ParseMagnitude(value)
	before := stats.Health
	if amount > stats.MaxHealth-stats.Health {
		stats.Health = stats.MaxHealth
	} else {
		stats.Health += amount
	}

	out.Kind = OutcomeHealed
	out.Amount = stats.Health - before
	return out
}

// StatusHandler cures any non-None status. The value is not interpreted.
type StatusHandler struct{}

// Name returns "Status"
func (h *StatusHandler) Name() string { return domain.EffectStatus }

// Validate accepts any value
func (h *StatusHandler) Validate(string) error { return nil }

// Apply resets the target's status to None
func (h *StatusHandler) Apply(target *domain.Creature, value string) Outcome {
	out := Outcome{Effect: h.Name(), Value: value, Target: target.Name, Kind: OutcomeNoEffect}
	if target.Stats.Status == domain.StatusNone || target.Stats.Status == "" {
		return out
	}
	target.Stats.Status = domain.StatusNone
	out.Kind = OutcomeCured
	return out
}
