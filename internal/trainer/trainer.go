package trainer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/event"
	"github.com/Neworly/one-year-one-code/internal/inventory"
	"github.com/Neworly/one-year-one-code/internal/logger"
)

// Trainer owns one backpack and one party
type Trainer struct {
	ID       uuid.UUID
	Card     domain.TrainerCard
	Backpack *inventory.Backpack
	Party    *domain.Party
}

// New creates a trainer with an empty backpack and party. bus may be nil.
func New(name string, applier inventory.EffectApplier, bus event.Bus) *Trainer {
	return &Trainer{
		ID:       uuid.New(),
		Card:     domain.TrainerCard{Name: name, Badges: []string{}},
		Backpack: inventory.New(applier, bus),
		Party:    domain.NewParty(),
	}
}

// AddPartyMember appends c to the party. A full party returns ErrPartyFull and is left unchanged.
func (t *Trainer) AddPartyMember(ctx context.Context, c *domain.Creature) error {
	log := logger.FromContext(ctx)

	if c == nil {
		return fmt.Errorf(ErrFmtNilCreature, domain.ErrInvalidCreature)
	}
	if t.Party.IsFull() {
		log.Warn(LogMsgPartyFull, "trainer", t.Card.Name, "creature", c.Name)
		return fmt.Errorf(ErrFmtPartyFull, domain.ErrPartyFull, t.Card.Name, t.Party.Len())
	}
	if t.Party.Has(c.Name) {
		return fmt.Errorf(ErrFmtDuplicateName, domain.ErrInvalidCreature, t.Card.Name, c.Name)
	}

	t.Party.Members = append(t.Party.Members, c)
	t.Card.CreaturesEncountered++
	log.Info(LogMsgMemberAdded, "trainer", t.Card.Name, "creature", c.Name, "party_size", t.Party.Len())
	return nil
}

// FindMember returns the party member with the given name, or nil
func (t *Trainer) FindMember(name string) *domain.Creature {
	_, c := t.Party.Find(name)
	return c
}

// UseItem consumes one item from the backpack on the named party member
func (t *Trainer) UseItem(ctx context.Context, item, target string) (*inventory.UseResult, error) {
	return t.Backpack.Consume(ctx, item, t.Party, target)
}

// RecordBattle updates the card after a match fought on the given side
func (t *Trainer) RecordBattle(ctx context.Context, outcome domain.MatchOutcome, side domain.Side) {
	t.Card.Battles++
	if winner, ok := outcome.Winner(); ok && winner == side {
		t.Card.Wins++
	}
	logger.FromContext(ctx).Info(LogMsgBattleRecorded,
		"trainer", t.Card.Name, "battles", t.Card.Battles, "wins", t.Card.Wins)
}
