package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Item Metrics
var (
	ItemsAcquired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsAcquired,
			Help: HelpTextItemsAcquired,
		},
		[]string{LabelItem},
	)

	ItemsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsConsumed,
			Help: HelpTextItemsConsumed,
		},
		[]string{LabelItem},
	)

	EffectsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEffectsApplied,
			Help: HelpTextEffectsApplied,
		},
		[]string{LabelEffect, LabelOutcome},
	)
)

// Battle Metrics
var (
	BattlesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesTotal,
			Help: HelpTextBattlesTotal,
		},
		[]string{LabelOutcome},
	)

	BattleRounds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBattleRounds,
			Help:    HelpTextBattleRounds,
			Buckets: BattleRoundBuckets,
		},
	)

	CreaturesFainted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCreaturesFainted,
			Help: HelpTextCreaturesFainted,
		},
		[]string{LabelSide},
	)

	SimulatedMatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimulationsTotal,
			Help: HelpTextSimulationsTotal,
		},
	)
)
