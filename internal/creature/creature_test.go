package creature

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/movepool"
)

func ember() *domain.Move {
	return &domain.Move{Name: "Ember", AttackType: "fire", Damage: 10, CurrentUse: 20, MaxUse: 20}
}

func TestNew(t *testing.T) {
	t.Run("default stats", func(t *testing.T) {
		c, err := New("John", ember())
		require.NoError(t, err)

		assert.Equal(t, "John", c.Name)
		assert.Equal(t, domain.CombatStats{
			Level: 1, Attack: 10, Defense: 20, SpecialAttack: 12, SpecialDefense: 20,
			Speed: 4, Evade: 5, Health: 100, MaxHealth: 100, Status: domain.StatusNone,
		}, c.Stats)
		assert.True(t, c.IsAlive())
		assert.Equal(t, "Ember", c.Moves[0].Name)
		assert.Nil(t, c.Moves[1])
	})

	t.Run("nil keeps a slot empty", func(t *testing.T) {
		c, err := New("John", nil, nil, ember())
		require.NoError(t, err)

		idx, m := c.Moves.FirstUsable()
		assert.Equal(t, 2, idx)
		assert.Equal(t, "Ember", m.Name)
	})

	t.Run("no moves", func(t *testing.T) {
		c, err := New("Smith")
		require.NoError(t, err)

		idx, _ := c.Moves.FirstUsable()
		assert.Equal(t, -1, idx)
	})

	t.Run("too many moves", func(t *testing.T) {
		_, err := New("John", ember(), ember(), ember(), ember(), ember())
		assert.ErrorIs(t, err, domain.ErrTooManyMoves)
	})

	t.Run("attack type outside whitelist", func(t *testing.T) {
		bad := &domain.Move{Name: "Vine Whip", AttackType: "grass", Damage: 10, CurrentUse: 1, MaxUse: 1}
		_, err := New("John", bad)
		assert.ErrorIs(t, err, domain.ErrInvalidAttackType)
	})

	t.Run("attack type check ignores case", func(t *testing.T) {
		m := ember()
		m.AttackType = "Fire"
		_, err := New("John", m)
		assert.NoError(t, err)
	})

	t.Run("uses above maximum", func(t *testing.T) {
		m := ember()
		m.CurrentUse = 21
		_, err := New("John", m)
		assert.ErrorIs(t, err, domain.ErrInvalidCreature)
		assert.Contains(t, err.Error(), "CurrentUse")
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := New("")
		assert.ErrorIs(t, err, domain.ErrInvalidCreature)
		assert.Contains(t, err.Error(), "Name is required")
	})
}

func TestNewWithStats(t *testing.T) {
	stats := DefaultStats()
	stats.Speed = 10

	c, err := NewWithStats("Smith", stats, ember())
	require.NoError(t, err)
	assert.Equal(t, 10, c.Stats.Speed)

	stats.MaxHealth = 0
	_, err = NewWithStats("Smith", stats)
	assert.ErrorIs(t, err, domain.ErrInvalidCreature)

	stats = DefaultStats()
	stats.Status = "sleepy"
	_, err = NewWithStats("Smith", stats)
	assert.ErrorIs(t, err, domain.ErrInvalidCreature)
}

type failingPool struct{}

func (failingPool) MovesFor(string) ([]*domain.Move, error) {
	return nil, errors.New("pool unavailable")
}

func TestFromPool(t *testing.T) {
	pool, err := movepool.Default()
	require.NoError(t, err)

	c, err := FromPool(pool, "John2", movepool.DefaultSpecies)
	require.NoError(t, err)
	assert.Equal(t, movepool.DefaultSpecies, c.Species)
	assert.Equal(t, "Ember", c.Moves[0].Name)
	assert.Nil(t, c.Moves[1])
	assert.Equal(t, "Burba Blast", c.Moves[2].Name)

	other, err := FromPool(pool, "John3", movepool.DefaultSpecies)
	require.NoError(t, err)
	assert.NotSame(t, c.Moves[0], other.Moves[0], "Creatures should not share move state")

	_, err = FromPool(failingPool{}, "John", "any")
	assert.ErrorContains(t, err, "pool unavailable")
}
