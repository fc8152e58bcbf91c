package metrics

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	t.Run("counts faints by side", func(t *testing.T) {
		before := testutil.ToFloat64(CreaturesFainted.WithLabelValues("b"))

		err := bus.Publish(ctx, event.NewBattleStepEvent(uuid.Nil, domain.BattleEvent{
			Type: domain.BattleEventFaint,
			Side: domain.SideB,
		}))

		require.NoError(t, err)
		assert.Equal(t, before+1, testutil.ToFloat64(CreaturesFainted.WithLabelValues("b")))
	})

	t.Run("counts finished battles by outcome", func(t *testing.T) {
		before := testutil.ToFloat64(BattlesTotal.WithLabelValues(string(domain.OutcomeSideA)))

		err := bus.Publish(ctx, event.NewBattleFinishedEvent(&domain.BattleResult{
			Outcome: domain.OutcomeSideA,
			Rounds:  7,
		}))

		require.NoError(t, err)
		assert.Equal(t, before+1, testutil.ToFloat64(BattlesTotal.WithLabelValues(string(domain.OutcomeSideA))))
	})

	t.Run("ignores malformed payloads", func(t *testing.T) {
		err := bus.Publish(ctx, event.Event{Type: event.BattleFinished, Payload: "not a payload"})

		assert.NoError(t, err)
	})

	t.Run("attack events are not counted", func(t *testing.T) {
		before := testutil.ToFloat64(CreaturesFainted.WithLabelValues("a"))

		_ = bus.Publish(ctx, event.NewBattleStepEvent(uuid.Nil, domain.BattleEvent{
			Type: domain.BattleEventAttack,
			Side: domain.SideA,
		}))

		assert.Equal(t, before, testutil.ToFloat64(CreaturesFainted.WithLabelValues("a")))
	})
}
