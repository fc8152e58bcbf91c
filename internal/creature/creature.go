package creature

import (
	"fmt"

	"github.com/Neworly/one-year-one-code/internal/domain"
)

// MovePool supplies starting moves per species
type MovePool interface {
	MovesFor(species string) ([]*domain.Move, error)
}

// DefaultStats returns the stats every new creature starts with
func DefaultStats() domain.CombatStats {
	return domain.CombatStats{
		Level:          DefaultLevel,
		Attack:         DefaultAttack,
		Defense:        DefaultDefense,
		SpecialAttack:  DefaultSpecialAttack,
		SpecialDefense: DefaultSpecialDefense,
		Speed:          DefaultSpeed,
		Evade:          DefaultEvade,
		Health:         DefaultMaxHealth,
		MaxHealth:      DefaultMaxHealth,
		Status:         domain.StatusNone,
	}
}

// New builds a creature with default stats. moves fill slots in order; nil leaves a slot empty.
func New(name string, moves ...*domain.Move) (*domain.Creature, error) {
	return NewWithStats(name, DefaultStats(), moves...)
}

// NewWithStats builds a creature with the given stats
func NewWithStats(name string, stats domain.CombatStats, moves ...*domain.Move) (*domain.Creature, error) {
	if len(moves) > domain.MaxMoveSlots {
		return nil, fmt.Errorf(ErrFmtTooManyMoves, domain.ErrTooManyMoves, name, len(moves), domain.MaxMoveSlots)
	}

	c := &domain.Creature{Name: name, Stats: stats}
	copy(c.Moves[:], moves)

	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// FromPool builds a creature whose moves come from the pool entry for species
func FromPool(pool MovePool, name, species string) (*domain.Creature, error) {
	moves, err := pool.MovesFor(species)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtMovesFor, species, err)
	}

	c, err := New(name, moves...)
	if err != nil {
		return nil, err
	}
	c.Species = species
	return c, nil
}
