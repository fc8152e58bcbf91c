package main

import (
	"context"
	"fmt"
	"io"

	"github.com/Neworly/one-year-one-code/internal/battle"
	"github.com/Neworly/one-year-one-code/internal/config"
	"github.com/Neworly/one-year-one-code/internal/creature"
	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/effect"
	"github.com/Neworly/one-year-one-code/internal/event"
	"github.com/Neworly/one-year-one-code/internal/item"
	"github.com/Neworly/one-year-one-code/internal/logger"
	"github.com/Neworly/one-year-one-code/internal/metrics"
	"github.com/Neworly/one-year-one-code/internal/movepool"
	"github.com/Neworly/one-year-one-code/internal/trainer"
)

// Rival setup
const (
	RivalPartyName    = "Smith"
	RivalFullRecovers = 10
)

// tutorialItems are tried in order; the first one owned is used
var tutorialItems = []string{item.Potion, item.SuperPotion}

// run plays the scripted tutorial: show the backpack, use a healing item, then battle the rival
func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	log := logger.FromContext(ctx)

	pool, err := movepool.Load(cfg.MovepoolPath)
	if err != nil {
		return fmt.Errorf("failed to load movepool: %w", err)
	}

	registry := effect.NewRegistry()
	if err := item.Validate(registry); err != nil {
		return err
	}
	applier := effect.NewApplier(effect.NewParser(cfg.EffectCacheSize, cfg.EffectCacheTTL), registry)

	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)

	player, err := newPlayer(ctx, cfg.TrainerName, cfg.TrainerName, pool, applier, bus)
	if err != nil {
		return err
	}
	if err := player.Backpack.Acquire(ctx, item.Potion); err != nil {
		return err
	}

	rival, err := newPlayer(ctx, cfg.RivalName, RivalPartyName, pool, applier, bus)
	if err != nil {
		return err
	}
	for i := 0; i < RivalFullRecovers; i++ {
		if err := rival.Backpack.Acquire(ctx, item.FullRecover); err != nil {
			return err
		}
	}

	// Simulation templates are taken before the tutorial battle mutates the parties
	templateA, templateB := player.Party.Clone(), rival.Party.Clone()

	fmt.Fprintln(out, "<=Backpack=>")
	for _, line := range player.Backpack.List() {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, "<=End=>")

	useTutorialItem(ctx, out, player, cfg.TutorialTarget)

	opts := battle.Options{
		TieBreak:  domain.Side(cfg.BattleTieBreak),
		MaxRounds: cfg.BattleMaxRounds,
		Bus:       bus,
	}
	result, err := battle.Run(ctx, player.Party, rival.Party, opts)
	if err != nil {
		return err
	}
	for _, step := range result.Events {
		fmt.Fprintln(out, step.Message)
	}
	player.RecordBattle(ctx, result.Outcome, domain.SideA)
	rival.RecordBattle(ctx, result.Outcome, domain.SideB)
	log.Info("Tutorial battle complete", "outcome", result.Outcome, "rounds", result.Rounds)

	if cfg.SimMatches > 0 {
		sim := battle.NewSimulator(cfg.SimWorkers, cfg.SimQueueSize, battle.Options{
			TieBreak:  opts.TieBreak,
			MaxRounds: opts.MaxRounds,
		})
		summary, err := sim.Run(ctx, templateA, templateB, cfg.SimMatches)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "simulated %d matches: %s %d, %s %d, draw %d\n", summary.Matches,
			player.Card.Name, summary.Wins[domain.OutcomeSideA],
			rival.Card.Name, summary.Wins[domain.OutcomeSideB],
			summary.Wins[domain.OutcomeDraw])
	}

	return nil
}

// newPlayer builds a trainer with a full party named base, base2 ... base6
func newPlayer(ctx context.Context, name, base string, pool creature.MovePool, applier *effect.Applier, bus event.Bus) (*trainer.Trainer, error) {
	t := trainer.New(name, applier, bus)
	for i := 1; i <= domain.MaxPartySize; i++ {
		memberName := base
		if i > 1 {
			memberName = fmt.Sprintf("%s%d", base, i)
		}
		c, err := creature.FromPool(pool, memberName, movepool.DefaultSpecies)
		if err != nil {
			return nil, err
		}
		if err := t.AddPartyMember(ctx, c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func useTutorialItem(ctx context.Context, out io.Writer, player *trainer.Trainer, target string) {
	log := logger.FromContext(ctx)

	for _, name := range tutorialItems {
		if !player.Backpack.Lookup(name) {
			fmt.Fprintf(out, "%s is not in your backpack\n", name)
			continue
		}

		res, err := player.UseItem(ctx, name, target)
		if err != nil {
			if domain.IsRecoverable(err) {
				log.Warn("Item use rejected", "item", name, "target", target, "error", err)
				fmt.Fprintf(out, "could not use %s: %v\n", name, err)
				return
			}
			log.Error("Item use failed", "item", name, "error", err)
			return
		}
		for _, o := range res.Outcomes {
			fmt.Fprintf(out, "%s on %s: %s\n", res.Item, o.Target, o.Kind)
		}
		return
	}

	log.Warn("No tutorial item available", "error", domain.ErrNotOwned)
}
