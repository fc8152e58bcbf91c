package metrics

import (
	"context"

	"github.com/Neworly/one-year-one-code/internal/event"
	"github.com/Neworly/one-year-one-code/internal/logger"
)

// EventMetricsCollector subscribes to battle events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to the battle events the collector counts
func (e *EventMetricsCollector) Register(bus event.Bus) {
	bus.Subscribe(event.BattleFaint, e.HandleEvent)
	bus.Subscribe(event.BattleFinished, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	switch evt.Type {
	case event.BattleFaint:
		payload, ok := evt.Payload.(event.BattleStepPayloadV1)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgUnexpectedPayload, "type", evt.Type)
			return nil
		}
		CreaturesFainted.WithLabelValues(string(payload.Step.Side)).Inc()

	case event.BattleFinished:
		payload, ok := evt.Payload.(event.BattleFinishedPayloadV1)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgUnexpectedPayload, "type", evt.Type)
			return nil
		}
		BattlesTotal.WithLabelValues(string(payload.Outcome)).Inc()
		BattleRounds.Observe(float64(payload.Rounds))
	}

	return nil
}
