package domain

// Status represents a persistent condition on a creature
type Status string

const (
	StatusNone     Status = "none"
	StatusPoisoned Status = "poisoned"
	StatusConfused Status = "confused"
)

// MaxMoveSlots is the number of move slots a creature has
const MaxMoveSlots = 4

// CombatStats holds the combat statistics of a creature.
// Health is signed: it may drop below zero before the creature is treated as fainted.
type CombatStats struct {
	Level          int    `json:"level" yaml:"level" validate:"min=0"`
	Attack         int    `json:"attack" yaml:"attack" validate:"min=0"`
	Defense        int    `json:"defense" yaml:"defense" validate:"min=0"`
	SpecialAttack  int    `json:"special_attack" yaml:"special_attack" validate:"min=0"`
	SpecialDefense int    `json:"special_defense" yaml:"special_defense" validate:"min=0"`
	Speed          int    `json:"speed" yaml:"speed" validate:"min=0"`
	Evade          int    `json:"evade" yaml:"evade" validate:"min=0"`
	Health         int    `json:"health" yaml:"health"`
	MaxHealth      int    `json:"max_health" yaml:"max_health" validate:"gt=0"`
	Status         Status `json:"status" yaml:"status" validate:"oneof=none poisoned confused"`
}

// Move is a single attack a creature can use.
// CurrentUse is the number of uses remaining and is decremented by the battle engine.
type Move struct {
	Name       string `json:"name" yaml:"name" validate:"required"`
	AttackType string `json:"attack_type" yaml:"attack_type" validate:"required,attacktype"`
	Damage     int    `json:"damage" yaml:"damage" validate:"min=0"`
	CurrentUse int    `json:"current_use" yaml:"current_use" validate:"min=0,ltefield=MaxUse"`
	MaxUse     int    `json:"max_use" yaml:"max_use" validate:"min=0"`
}

// HasUses reports whether the move can still be used
func (m *Move) HasUses() bool {
	return m != nil && m.CurrentUse > 0
}

// MoveSlots holds up to four optional moves; a nil slot is empty.
type MoveSlots [MaxMoveSlots]*Move

// FirstUsable returns the index and move of the first slot with uses remaining,
// or -1, nil when no slot can be used.
func (s *MoveSlots) FirstUsable() (int, *Move) {
	for i, m := range s {
		if m.HasUses() {
			return i, m
		}
	}
	return -1, nil
}

// Creature is a roster member. Name identifies it within a party.
type Creature struct {
	Name    string      `json:"name" validate:"required"`
	Species string      `json:"species,omitempty"`
	Moves   MoveSlots   `json:"moves"`
	Stats   CombatStats `json:"stats"`
}

// IsAlive reports whether the creature has health left
func (c *Creature) IsAlive() bool {
	return c.Stats.Health > 0
}

// Clone returns a deep copy of the creature, including its moves.
func (c *Creature) Clone() *Creature {
	clone := *c
	for i, m := range c.Moves {
		if m != nil {
			mv := *m
			clone.Moves[i] = &mv
		}
	}
	return &clone
}
