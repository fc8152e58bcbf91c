package domain

import (
	"time"

	"github.com/google/uuid"
)

// Side identifies one of the two parties in a match
type Side string

const (
	SideA Side = "a"
	SideB Side = "b"
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// MatchOutcome is the final result of a match
type MatchOutcome string

const (
	// OutcomeSideA means side B ran out of living members first
	OutcomeSideA MatchOutcome = "side_a"
	// OutcomeSideB means side A ran out of living members first
	OutcomeSideB MatchOutcome = "side_b"
	// OutcomeDraw means both sides are exhausted or neither can make progress
	OutcomeDraw MatchOutcome = "draw"
)

// Winner returns the winning side, and false on a draw
func (o MatchOutcome) Winner() (Side, bool) {
	switch o {
	case OutcomeSideA:
		return SideA, true
	case OutcomeSideB:
		return SideB, true
	default:
		return "", false
	}
}

// BattleEventType classifies a narrated battle event
type BattleEventType string

const (
	BattleEventAttack   BattleEventType = "attack"
	BattleEventFaint    BattleEventType = "faint"
	BattleEventNoMoves  BattleEventType = "no_moves"
	BattleEventSwitch   BattleEventType = "switch"
	BattleEventFinished BattleEventType = "finished"
)

// BattleEvent is one narrated step of a match
type BattleEvent struct {
	Round   int             `json:"round"`
	Type    BattleEventType `json:"type"`
	Side    Side            `json:"side,omitempty"`
	Actor   string          `json:"actor,omitempty"`
	Target  string          `json:"target,omitempty"`
	Move    string          `json:"move,omitempty"`
	Damage  int             `json:"damage,omitempty"`
	Message string          `json:"message"`
}

// BattleResult is the summary of a completed match
type BattleResult struct {
	ID          uuid.UUID     `json:"id"`
	Outcome     MatchOutcome  `json:"outcome"`
	Rounds      int           `json:"rounds"`
	Events      []BattleEvent `json:"events"`
	AliveA      int           `json:"alive_a"`
	AliveB      int           `json:"alive_b"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at"`
}
