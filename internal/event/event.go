package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Neworly/one-year-one-code/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	ItemAcquired   Type = "item.acquired"
	ItemConsumed   Type = "item.consumed"
	BattleAttack   Type = "battle.attack"
	BattleFaint    Type = "battle.faint"
	BattleNoMoves  Type = "battle.no_moves"
	BattleSwitch   Type = "battle.switch"
	BattleFinished Type = "battle.finished"
)

// ItemAcquiredPayloadV1 is the typed payload for item acquisition events
type ItemAcquiredPayloadV1 struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// EffectResultV1 summarizes one applied effect
type EffectResultV1 struct {
	Effect string `json:"effect"`
	Kind   string `json:"kind"`
	Amount int    `json:"amount,omitempty"`
}

// ItemConsumedPayloadV1 is the typed payload for item consumption events
type ItemConsumedPayloadV1 struct {
	Item      string           `json:"item"`
	Target    string           `json:"target"`
	Remaining int              `json:"remaining"`
	Effects   []EffectResultV1 `json:"effects"`
}

// BattleStepPayloadV1 is the typed payload for per-action battle events
type BattleStepPayloadV1 struct {
	MatchID uuid.UUID          `json:"match_id"`
	Step    domain.BattleEvent `json:"step"`
}

// BattleFinishedPayloadV1 is the typed payload for match completion events
type BattleFinishedPayloadV1 struct {
	MatchID uuid.UUID           `json:"match_id"`
	Outcome domain.MatchOutcome `json:"outcome"`
	Rounds  int                 `json:"rounds"`
	AliveA  int                 `json:"alive_a"`
	AliveB  int                 `json:"alive_b"`
}

// NewItemAcquiredEvent creates an item acquisition event
func NewItemAcquiredEvent(item string, quantity int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemAcquired,
		Payload: ItemAcquiredPayloadV1{Item: item, Quantity: quantity},
	}
}

// NewItemConsumedEvent creates an item consumption event
func NewItemConsumedEvent(item, target string, remaining int, effects []EffectResultV1) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemConsumed,
		Payload: ItemConsumedPayloadV1{Item: item, Target: target, Remaining: remaining, Effects: effects},
	}
}

// NewBattleStepEvent creates an event for a narrated battle step
func NewBattleStepEvent(matchID uuid.UUID, step domain.BattleEvent) Event {
	t := BattleAttack
	switch step.Type {
	case domain.BattleEventFaint:
		t = BattleFaint
	case domain.BattleEventNoMoves:
		t = BattleNoMoves
	case domain.BattleEventSwitch:
		t = BattleSwitch
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: BattleStepPayloadV1{MatchID: matchID, Step: step},
	}
}

// NewBattleFinishedEvent creates a match completion event
func NewBattleFinishedEvent(result *domain.BattleResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BattleFinished,
		Payload: BattleFinishedPayloadV1{
			MatchID: result.ID,
			Outcome: result.Outcome,
			Rounds:  result.Rounds,
			AliveA:  result.AliveA,
			AliveB:  result.AliveB,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to each of the given event types
func (b *MemoryBus) SubscribeAll(handler Handler, eventTypes ...Type) {
	for _, t := range eventTypes {
		b.Subscribe(t, handler)
	}
}
