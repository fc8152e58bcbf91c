package inventory

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/effect"
	"github.com/Neworly/one-year-one-code/internal/event"
	"github.com/Neworly/one-year-one-code/internal/item"
	"github.com/Neworly/one-year-one-code/internal/logger"
	"github.com/Neworly/one-year-one-code/internal/metrics"
)

// EffectApplier applies an item's ability text to a target in a party
type EffectApplier interface {
	Apply(ctx context.Context, abilityText string, party *domain.Party, target string) ([]effect.Outcome, error)
}

// UseResult describes a successful item use
type UseResult struct {
	Item      string           `json:"item"`
	Target    string           `json:"target"`
	Remaining int              `json:"remaining"`
	Outcomes  []effect.Outcome `json:"outcomes"`
}

// Backpack is an ordered collection of owned item stacks, at most one per item name
type Backpack struct {
	stacks  []domain.ItemStack
	applier EffectApplier
	bus     event.Bus
}

// New creates an empty backpack. bus may be nil.
func New(applier EffectApplier, bus event.Bus) *Backpack {
	return &Backpack{applier: applier, bus: bus}
}

// All yields every stack in insertion order. Breaking out of the loop stops the traversal.
func (b *Backpack) All() iter.Seq2[int, domain.ItemStack] {
	return func(yield func(int, domain.ItemStack) bool) {
		for i, stack := range b.stacks {
			if !yield(i, stack) {
				return
			}
		}
	}
}

// findStack returns the index of the stack with the given name, or -1
func (b *Backpack) findStack(name string) int {
	for i, stack := range b.All() {
		if stack.Name == name {
			return i
		}
	}
	return -1
}

// Len returns the number of distinct stacks
func (b *Backpack) Len() int {
	return len(b.stacks)
}

// Lookup reports whether a stack with this name exists
func (b *Backpack) Lookup(name string) bool {
	return b.findStack(name) != -1
}

// Quantity returns how many of the named item are owned
func (b *Backpack) Quantity(name string) int {
	if idx := b.findStack(name); idx != -1 {
		return b.stacks[idx].Quantity
	}
	return 0
}

// Acquire adds one of the named item. Names outside the catalog fail with ErrUnknownItem.
func (b *Backpack) Acquire(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	idx := b.findStack(name)
	if idx == -1 {
		if _, err := item.New(name); err != nil {
			log.Warn(LogMsgUnknownItem, "item", name)
			return err
		}
		b.stacks = append(b.stacks, domain.ItemStack{Name: name, Quantity: 1})
		idx = len(b.stacks) - 1
	} else {
		b.stacks[idx].Quantity++
	}

	quantity := b.stacks[idx].Quantity
	log.Info(LogMsgItemAcquired, "item", name, "quantity", quantity)
	metrics.ItemsAcquired.WithLabelValues(name).Inc()
	b.publish(ctx, event.NewItemAcquiredEvent(name, quantity))
	return nil
}

// Consume uses one of the named item on the party member named target.
//
// ErrNotOwned and ErrTargetNotInParty are returned without spending the item, as are
// ability parse failures. On success the stack is decremented and removed at zero.
func (b *Backpack) Consume(ctx context.Context, name string, party *domain.Party, target string) (*UseResult, error) {
	log := logger.FromContext(ctx)

	idx := b.findStack(name)
	if idx == -1 {
		log.Warn(LogMsgItemNotOwned, "item", name)
		return nil, fmt.Errorf(ErrFmtNotOwned, domain.ErrNotOwned, name)
	}

	ability, err := item.Lookup(name)
	if err != nil {
		return nil, err
	}

	outcomes, err := b.applier.Apply(ctx, ability, party, target)
	if err != nil {
		log.Warn(LogMsgUseFailed, "item", name, "target", target, "error", err)
		return nil, fmt.Errorf(ErrFmtApplyEffects, name, target, err)
	}

	remaining := b.stacks[idx].Quantity - 1
	if remaining > 0 {
		b.stacks[idx].Quantity = remaining
	} else {
		b.stacks = slices.Delete(b.stacks, idx, idx+1)
	}

	log.Info(LogMsgItemUsed, "item", name, "target", target, "remaining", remaining)
	metrics.ItemsConsumed.WithLabelValues(name).Inc()
	b.publish(ctx, event.NewItemConsumedEvent(name, target, remaining, summarize(outcomes)))

	return &UseResult{Item: name, Target: target, Remaining: remaining, Outcomes: outcomes}, nil
}

// List renders every stack as "name: ability-text" in insertion order
func (b *Backpack) List() []string {
	entries := make([]string, 0, len(b.stacks))
	for _, stack := range b.All() {
		ability, _ := item.Lookup(stack.Name)
		entries = append(entries, fmt.Sprintf(ListEntryFormat, stack.Name, ability))
	}
	return entries
}

// Stacks returns a copy of the owned stacks
func (b *Backpack) Stacks() []domain.ItemStack {
	return slices.Clone(b.stacks)
}

func (b *Backpack) publish(ctx context.Context, evt event.Event) {
	if b.bus == nil {
		return
	}
	if err := b.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func summarize(outcomes []effect.Outcome) []event.EffectResultV1 {
	results := make([]event.EffectResultV1, 0, len(outcomes))
	for _, o := range outcomes {
		results = append(results, event.EffectResultV1{Effect: o.Effect, Kind: string(o.Kind), Amount: o.Amount})
	}
	return results
}
