package item

import (
	"fmt"
	"sort"

	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/effect"
)

// catalog is the single source of truth for valid item names
var catalog = map[string]string{
	Potion:      "Heal: 20",
	SuperPotion: "Heal: 60",
	HyperPotion: "Heal: 120",
	FullRecover: "Heal: 999, Status: None",
	Antidote:    "Status: None",
}

// Lookup returns the ability text of the named item
func Lookup(name string) (string, error) {
	ability, ok := catalog[name]
	if !ok {
		return "", fmt.Errorf(ErrFmtUnknownItem, domain.ErrUnknownItem, name)
	}
	return ability, nil
}

// Exists reports whether the name is in the catalog
func Exists(name string) bool {
	_, ok := catalog[name]
	return ok
}

// New builds a descriptor for a catalog item. There is no way to build one for
// a name outside the catalog.
func New(name string) (domain.ItemDescriptor, error) {
	ability, err := Lookup(name)
	if err != nil {
		return domain.ItemDescriptor{}, err
	}
	return domain.ItemDescriptor{Name: name, AbilityText: ability}, nil
}

// Names returns every catalog item name in sorted order
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every catalog ability text parses and every handled value is well formed
func Validate(registry *effect.Registry) error {
	for _, name := range Names() {
		pairs, err := effect.ParseDescriptor(catalog[name])
		if err != nil {
			return fmt.Errorf(ErrFmtInvalidAbility, name, err)
		}
		for _, pair := range pairs {
			if h := registry.GetHandler(pair.Name); h != nil {
				if err := h.Validate(pair.Value); err != nil {
					return fmt.Errorf(ErrFmtInvalidAbility, name, err)
				}
			}
		}
	}
	return nil
}
