package effect

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Neworly/one-year-one-code/internal/domain"
)

// Parser parses ability texts and caches the result.
// Catalog texts are immutable, so a text always parses to the same pairs.
type Parser struct {
	cache *expirable.LRU[string, []domain.EffectPair]
}

// NewParser creates a parser caching up to size ability texts for ttl.
// A ttl of zero keeps entries until they are evicted by size.
func NewParser(size int, ttl time.Duration) *Parser {
	return &Parser{
		cache: expirable.NewLRU[string, []domain.EffectPair](size, nil, ttl),
	}
}

// Parse returns the effect pairs of text. Failed parses are not cached.
func (p *Parser) Parse(text string) ([]domain.EffectPair, error) {
	if pairs, ok := p.cache.Get(text); ok {
		return clonePairs(pairs), nil
	}

	pairs, err := ParseDescriptor(text)
	if err != nil {
		return nil, err
	}

	p.cache.Add(text, clonePairs(pairs))
	return pairs, nil
}

// Len returns the number of cached texts
func (p *Parser) Len() int {
	return p.cache.Len()
}

func clonePairs(pairs []domain.EffectPair) []domain.EffectPair {
	out := make([]domain.EffectPair, len(pairs))
	copy(out, pairs)
	return out
}
