package battle

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/event"
	"github.com/Neworly/one-year-one-code/internal/logger"
)

// DamageFunc computes the damage attacker deals to defender with move
type DamageFunc func(attacker, defender *domain.Creature, move *domain.Move) int

// PassThroughDamage deals exactly the move's damage with no mitigation
func PassThroughDamage(_, _ *domain.Creature, move *domain.Move) int {
	return move.Damage
}

// Options configures a match. Zero values fall back to the package defaults.
type Options struct {
	// TieBreak is the side that acts first when both active combatants have equal speed
	TieBreak domain.Side
	// MaxRounds ends the match in a draw once this many rounds have been played
	MaxRounds int
	Damage    DamageFunc
	// Bus receives every narrated step. May be nil.
	Bus event.Bus
}

func (o Options) withDefaults() Options {
	if o.TieBreak == "" {
		o.TieBreak = DefaultTieBreak
	}
	if o.MaxRounds <= 0 {
		o.MaxRounds = DefaultMaxRounds
	}
	if o.Damage == nil {
		o.Damage = PassThroughDamage
	}
	return o
}

// Match is the state of one battle between two parties.
//
// A round gives each side's active combatant one action, faster side first. A faint
// ends the round immediately and the fainted side advances to its next living member.
// Matches mutate the parties they are given.
type Match struct {
	id      uuid.UUID
	opts    Options
	parties map[domain.Side]*domain.Party
	active  map[domain.Side]int

	round   int
	pending []domain.Side
	acted   bool

	events    []domain.BattleEvent
	done      bool
	outcome   domain.MatchOutcome
	startedAt time.Time
	endedAt   time.Time
}

// NewMatch prepares a match. Both parties must have at least one member.
func NewMatch(a, b *domain.Party, opts Options) (*Match, error) {
	if a == nil || a.Len() == 0 {
		return nil, fmt.Errorf(ErrFmtEmptyParty, domain.ErrEmptyParty, domain.SideA)
	}
	if b == nil || b.Len() == 0 {
		return nil, fmt.Errorf(ErrFmtEmptyParty, domain.ErrEmptyParty, domain.SideB)
	}
	opts = opts.withDefaults()
	if opts.TieBreak != domain.SideA && opts.TieBreak != domain.SideB {
		return nil, fmt.Errorf(ErrFmtInvalidSide, domain.ErrInvalidCreature, opts.TieBreak)
	}

	m := &Match{
		id:        uuid.New(),
		opts:      opts,
		parties:   map[domain.Side]*domain.Party{domain.SideA: a, domain.SideB: b},
		active:    map[domain.Side]int{domain.SideA: a.NextAlive(0), domain.SideB: b.NextAlive(0)},
		startedAt: time.Now(),
	}
	return m, nil
}

// ID returns the match identifier
func (m *Match) ID() uuid.UUID { return m.id }

// Done reports whether the match has an outcome
func (m *Match) Done() bool { return m.done }

// Outcome returns the result, valid once Done is true
func (m *Match) Outcome() domain.MatchOutcome { return m.outcome }

// Rounds returns the number of rounds started so far
func (m *Match) Rounds() int { return m.round }

// Events returns every narrated step so far
func (m *Match) Events() []domain.BattleEvent {
	return slices.Clone(m.events)
}

// Active returns the side's current combatant, or nil if it has none alive
func (m *Match) Active(side domain.Side) *domain.Creature {
	idx := m.active[side]
	if idx < 0 {
		return nil
	}
	return m.parties[side].Members[idx]
}

// Turn performs the next single action and returns the steps it produced.
// A new round is started when the previous one is complete.
func (m *Match) Turn(ctx context.Context) []domain.BattleEvent {
	if m.done {
		return nil
	}
	mark := len(m.events)
	if len(m.pending) == 0 {
		if m.checkExhausted() {
			m.finish(ctx, "")
			return slices.Clone(m.events[mark:])
		}
		m.startRound()
	}

	actor := m.pending[0]
	m.pending = m.pending[1:]
	m.act(ctx, actor)

	if !m.done && len(m.pending) == 0 {
		m.endRound(ctx)
	}
	return slices.Clone(m.events[mark:])
}

// Round plays actions until the current round ends and returns the steps produced
func (m *Match) Round(ctx context.Context) []domain.BattleEvent {
	mark := len(m.events)
	for !m.done {
		m.Turn(ctx)
		if len(m.pending) == 0 {
			break
		}
	}
	return slices.Clone(m.events[mark:])
}

// Result summarizes the match. It may be called before the match is done.
func (m *Match) Result() *domain.BattleResult {
	return &domain.BattleResult{
		ID:          m.id,
		Outcome:     m.outcome,
		Rounds:      m.round,
		Events:      m.Events(),
		AliveA:      m.parties[domain.SideA].AliveCount(),
		AliveB:      m.parties[domain.SideB].AliveCount(),
		StartedAt:   m.startedAt,
		CompletedAt: m.endedAt,
	}
}

func (m *Match) startRound() {
	m.round++
	m.acted = false

	first := m.opts.TieBreak
	speedA := m.Active(domain.SideA).Stats.Speed
	speedB := m.Active(domain.SideB).Stats.Speed
	switch {
	case speedA > speedB:
		first = domain.SideA
	case speedB > speedA:
		first = domain.SideB
	}
	m.pending = []domain.Side{first, first.Opponent()}
}

func (m *Match) act(ctx context.Context, side domain.Side) {
	attacker := m.Active(side)
	defenderSide := side.Opponent()
	defender := m.Active(defenderSide)

	slot, move := attacker.Moves.FirstUsable()
	if slot == -1 {
		m.record(ctx, domain.BattleEvent{
			Type:    domain.BattleEventNoMoves,
			Side:    side,
			Actor:   attacker.Name,
			Message: fmt.Sprintf(MsgNoMoves, attacker.Name),
		})
		return
	}

	m.acted = true
	move.CurrentUse--
	damage := max(m.opts.Damage(attacker, defender, move), 0)
	defender.Stats.Health -= damage
	m.record(ctx, domain.BattleEvent{
		Type:    domain.BattleEventAttack,
		Side:    side,
		Actor:   attacker.Name,
		Target:  defender.Name,
		Move:    move.Name,
		Damage:  damage,
		Message: fmt.Sprintf(MsgAttack, attacker.Name, move.Name, defender.Name, damage),
	})

	if defender.IsAlive() {
		return
	}

	m.record(ctx, domain.BattleEvent{
		Type:    domain.BattleEventFaint,
		Side:    defenderSide,
		Actor:   defender.Name,
		Target:  attacker.Name,
		Message: fmt.Sprintf(MsgFaint, defender.Name, attacker.Name),
	})
	m.pending = nil

	party := m.parties[defenderSide]
	m.active[defenderSide] = party.NextAlive(m.active[defenderSide] + 1)
	if m.checkExhausted() {
		m.finish(ctx, "")
		return
	}

	next := m.Active(defenderSide)
	m.record(ctx, domain.BattleEvent{
		Type:    domain.BattleEventSwitch,
		Side:    defenderSide,
		Actor:   next.Name,
		Message: fmt.Sprintf(MsgSwitch, defenderSide, next.Name),
	})
}

func (m *Match) endRound(ctx context.Context) {
	switch {
	case !m.acted:
		m.outcome = domain.OutcomeDraw
		m.finish(ctx, MsgReasonStalled)
	case m.round >= m.opts.MaxRounds:
		m.outcome = domain.OutcomeDraw
		m.finish(ctx, MsgReasonLimit)
	}
}

// checkExhausted sets the outcome when at least one side has nobody alive.
// The caller is expected to finish the match when it returns true.
func (m *Match) checkExhausted() bool {
	aliveA := m.parties[domain.SideA].AliveCount()
	aliveB := m.parties[domain.SideB].AliveCount()

	switch {
	case aliveA == 0 && aliveB == 0:
		m.outcome = domain.OutcomeDraw
	case aliveB == 0:
		m.outcome = domain.OutcomeSideA
	case aliveA == 0:
		m.outcome = domain.OutcomeSideB
	default:
		return false
	}
	return true
}

func (m *Match) finish(ctx context.Context, reason string) {
	m.done = true
	m.pending = nil
	m.endedAt = time.Now()

	msg := fmt.Sprintf(MsgFinishedDraw, m.round)
	winner, ok := m.outcome.Winner()
	if ok {
		msg = fmt.Sprintf(MsgFinishedWin, winner, m.round)
	} else if reason != "" {
		msg += ": " + reason
	}
	m.events = append(m.events, domain.BattleEvent{
		Round:   m.round,
		Type:    domain.BattleEventFinished,
		Side:    winner,
		Message: msg,
	})

	logger.FromContext(ctx).Info(LogMsgMatchFinished,
		"match_id", m.id, "outcome", m.outcome, "rounds", m.round, "reason", reason)
	m.publish(ctx, event.NewBattleFinishedEvent(m.Result()))
}

func (m *Match) record(ctx context.Context, step domain.BattleEvent) {
	step.Round = m.round
	m.events = append(m.events, step)
	logger.FromContext(ctx).Info(LogMsgBattleStep,
		"match_id", m.id, "round", step.Round, "type", step.Type, "message", step.Message)
	m.publish(ctx, event.NewBattleStepEvent(m.id, step))
}

func (m *Match) publish(ctx context.Context, evt event.Event) {
	if m.opts.Bus == nil {
		return
	}
	if err := m.opts.Bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
