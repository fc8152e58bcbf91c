package domain

// MaxPartySize is the maximum number of creatures in a party
const MaxPartySize = 6

// Party is an ordered roster of creatures owned by a single trainer
type Party struct {
	Members []*Creature `json:"members"`
}

// NewParty creates an empty party with room for MaxPartySize members
func NewParty() *Party {
	return &Party{Members: make([]*Creature, 0, MaxPartySize)}
}

// Len returns the number of members
func (p *Party) Len() int {
	return len(p.Members)
}

// IsFull reports whether the party is at capacity
func (p *Party) IsFull() bool {
	return len(p.Members) >= MaxPartySize
}

// Find returns the index and member with the given name, or -1, nil.
func (p *Party) Find(name string) (int, *Creature) {
	for i, m := range p.Members {
		if m.Name == name {
			return i, m
		}
	}
	return -1, nil
}

// Has reports whether a member with the given name exists
func (p *Party) Has(name string) bool {
	idx, _ := p.Find(name)
	return idx != -1
}

// AliveCount returns the number of members with health > 0
func (p *Party) AliveCount() int {
	count := 0
	for _, m := range p.Members {
		if m.IsAlive() {
			count++
		}
	}
	return count
}

// NextAlive returns the index of the first living member at or after start,
// wrapping around the party. Returns -1 if nobody is alive.
func (p *Party) NextAlive(start int) int {
	n := len(p.Members)
	if n == 0 {
		return -1
	}
	if start < 0 {
		start = 0
	}
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if p.Members[idx].IsAlive() {
			return idx
		}
	}
	return -1
}

// Clone returns a deep copy of the party
func (p *Party) Clone() *Party {
	clone := &Party{Members: make([]*Creature, 0, cap(p.Members))}
	for _, m := range p.Members {
		clone.Members = append(clone.Members, m.Clone())
	}
	return clone
}
