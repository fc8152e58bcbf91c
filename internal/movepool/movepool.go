package movepool

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/validation"
)

//go:embed data/*
var dataFS embed.FS

var schemas = validation.NewSchemaValidator(dataFS)

var attackTypes = []string{
	AttackTypeFire,
	AttackTypeWater,
	AttackTypePsyche,
	AttackTypeNormal,
	AttackTypeDarkness,
}

// NormalizeAttackType folds t to its canonical whitelist spelling.
// The second result is false when t is not on the whitelist.
func NormalizeAttackType(t string) (string, bool) {
	folded := cases.Fold().String(strings.TrimSpace(t))
	if slices.Contains(attackTypes, folded) {
		return folded, true
	}
	return "", false
}

// IsValidAttackType reports whether t is on the whitelist, ignoring case
func IsValidAttackType(t string) bool {
	_, ok := NormalizeAttackType(t)
	return ok
}

// AttackTypes returns the whitelist
func AttackTypes() []string {
	return slices.Clone(attackTypes)
}

// MoveSpec is a move definition as written in a movepool file
type MoveSpec struct {
	Name       string `json:"name" yaml:"name"`
	AttackType string `json:"attack_type" yaml:"attack_type"`
	Damage     int    `json:"damage" yaml:"damage"`
	MaxUse     int    `json:"max_use" yaml:"max_use"`
}

// SpeciesSpec lists the move names a species starts with, slot by slot. "" is an empty slot.
type SpeciesSpec struct {
	Name  string   `json:"name" yaml:"name"`
	Slots []string `json:"slots" yaml:"slots"`
}

// Document is the on-disk shape of a movepool
type Document struct {
	Moves   []MoveSpec    `json:"moves" yaml:"moves"`
	Species []SpeciesSpec `json:"species" yaml:"species"`
}

// Pool is a validated move catalog with per-species starting moves
type Pool struct {
	moves   map[string]MoveSpec
	order   []string
	species map[string][]string
}

// Default returns the embedded movepool
func Default() (*Pool, error) {
	data, err := dataFS.ReadFile(DefaultPoolPath)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReadPool, DefaultPoolPath, err)
	}
	return Parse(data, FormatYAML)
}

// Load reads a movepool file, choosing the decoder by extension.
// An empty path returns the embedded default.
func Load(path string) (*Pool, error) {
	if path == "" {
		return Default()
	}

	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return nil, fmt.Errorf(ErrFmtUnsupportedFormat, domain.ErrInvalidMovepool, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReadPool, path, err)
	}
	return Parse(data, format)
}

// Parse decodes and validates a movepool. YAML input is converted to JSON so both
// formats pass through the same schema.
func Parse(data []byte, format Format) (*Pool, error) {
	if format == FormatYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		data = converted
	}

	if err := schemas.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrFmtSchema, domain.ErrInvalidMovepool, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(ErrFmtDecodeJSON, domain.ErrInvalidMovepool, err)
	}

	return New(doc)
}

func yamlToJSON(data []byte) ([]byte, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf(ErrFmtDecodeYAML, domain.ErrInvalidMovepool, err)
	}
	out, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtDecodeYAML, domain.ErrInvalidMovepool, err)
	}
	return out, nil
}

// New builds a pool from an already decoded document. Attack types are normalized
// and every species slot must name a known move.
func New(doc Document) (*Pool, error) {
	p := &Pool{
		moves:   make(map[string]MoveSpec, len(doc.Moves)),
		species: make(map[string][]string, len(doc.Species)),
	}

	for _, spec := range doc.Moves {
		spec.Name = strings.TrimSpace(spec.Name)
		if _, dup := p.moves[spec.Name]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateMove, domain.ErrInvalidMovepool, spec.Name)
		}
		attackType, ok := NormalizeAttackType(spec.AttackType)
		if !ok {
			return nil, fmt.Errorf(ErrFmtAttackType, domain.ErrInvalidAttackType, spec.AttackType, spec.Name)
		}
		spec.AttackType = attackType
		p.moves[spec.Name] = spec
		p.order = append(p.order, spec.Name)
	}

	for _, s := range doc.Species {
		if _, dup := p.species[s.Name]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateSpecies, domain.ErrInvalidMovepool, s.Name)
		}
		if len(s.Slots) > domain.MaxMoveSlots {
			return nil, fmt.Errorf(ErrFmtTooManySlots, domain.ErrTooManyMoves, s.Name, len(s.Slots))
		}
		slots := make([]string, len(s.Slots))
		for i, name := range s.Slots {
			name = strings.TrimSpace(name)
			if name != "" {
				if _, ok := p.moves[name]; !ok {
					return nil, fmt.Errorf(ErrFmtUnknownSlotMove, domain.ErrUnknownMove, name, s.Name)
				}
			}
			slots[i] = name
		}
		p.species[s.Name] = slots
	}

	return p, nil
}

// Move returns a fresh copy of the named move with all uses remaining
func (p *Pool) Move(name string) (*domain.Move, error) {
	spec, ok := p.moves[name]
	if !ok {
		return nil, fmt.Errorf(ErrFmtUnknownMove, domain.ErrUnknownMove, name)
	}
	return &domain.Move{
		Name:       spec.Name,
		AttackType: spec.AttackType,
		Damage:     spec.Damage,
		CurrentUse: spec.MaxUse,
		MaxUse:     spec.MaxUse,
	}, nil
}

// MovesFor returns fresh moves for a species, one entry per slot with nil for empty
// slots. Species without an entry use DefaultSpecies.
func (p *Pool) MovesFor(species string) ([]*domain.Move, error) {
	slots, ok := p.species[species]
	if !ok {
		slots, ok = p.species[DefaultSpecies]
		if !ok {
			return nil, fmt.Errorf(ErrFmtUnknownSpecies, domain.ErrInvalidCreature, species)
		}
	}

	moves := make([]*domain.Move, len(slots))
	for i, name := range slots {
		if name == "" {
			continue
		}
		m, err := p.Move(name)
		if err != nil {
			return nil, err
		}
		moves[i] = m
	}
	return moves, nil
}

// MoveNames returns move names in file order
func (p *Pool) MoveNames() []string {
	return slices.Clone(p.order)
}

// Species returns the configured species names, sorted
func (p *Pool) Species() []string {
	names := make([]string, 0, len(p.species))
	for name := range p.species {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
