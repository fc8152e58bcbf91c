package battle

import (
	"context"
	"fmt"
	"sync"

	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/logger"
	"github.com/Neworly/one-year-one-code/internal/metrics"
	"github.com/Neworly/one-year-one-code/internal/worker"
)

// Summary aggregates the outcomes of a simulation batch
type Summary struct {
	Matches int                         `json:"matches"`
	Wins    map[domain.MatchOutcome]int `json:"wins"`
	Rounds  int                         `json:"rounds"`
	Results []*domain.BattleResult      `json:"-"`
}

// Simulator runs independent matches in parallel on a worker pool.
// Every match fights on its own clone of the template parties.
type Simulator struct {
	workers   int
	queueSize int
	opts      Options
}

// NewSimulator creates a simulator. opts applies to every match.
func NewSimulator(workers, queueSize int, opts Options) *Simulator {
	return &Simulator{workers: workers, queueSize: queueSize, opts: opts}
}

// matchJob writes only its own index of results and errs
type matchJob struct {
	index int
	a, b  *domain.Party
	opts  Options

	results []*domain.BattleResult
	errs    []error
	done    *sync.WaitGroup
}

func (j *matchJob) Process(ctx context.Context) error {
	defer j.done.Done()

	res, err := Run(ctx, j.a, j.b, j.opts)
	j.results[j.index] = res
	j.errs[j.index] = err

	if err == nil {
		metrics.SimulatedMatches.Inc()
	}
	return err
}

// Run plays n matches between clones of a and b. The template parties are not modified.
// Results are returned in match order.
func (s *Simulator) Run(ctx context.Context, a, b *domain.Party, n int) (*Summary, error) {
	log := logger.FromContext(ctx)
	summary := &Summary{Wins: make(map[domain.MatchOutcome]int)}
	if n <= 0 {
		return summary, nil
	}

	pool := worker.NewPool(s.workers, s.queueSize)
	pool.Start(ctx)
	defer pool.Stop()

	log.Info(LogMsgSimStarted, "matches", n, "workers", s.workers)

	var (
		wg      sync.WaitGroup
		results = make([]*domain.BattleResult, n)
		errs    = make([]error, n)
	)

	for i := 0; i < n; i++ {
		job := &matchJob{
			index:   i,
			a:       a.Clone(),
			b:       b.Clone(),
			opts:    s.opts,
			results: results,
			errs:    errs,
			done:    &wg,
		}
		wg.Add(1)
		if err := pool.Enqueue(ctx, job); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf(ErrFmtEnqueue, i, err)
		}
	}
	wg.Wait()

	for i, res := range results {
		if errs[i] != nil {
			log.Warn(LogMsgSimMatchFailed, "index", i, "error", errs[i])
			return nil, errs[i]
		}
		summary.Matches++
		summary.Wins[res.Outcome]++
		summary.Rounds += res.Rounds
		summary.Results = append(summary.Results, res)
	}

	log.Info(LogMsgSimFinished, "matches", summary.Matches,
		"side_a", summary.Wins[domain.OutcomeSideA],
		"side_b", summary.Wins[domain.OutcomeSideB],
		"draw", summary.Wins[domain.OutcomeDraw])
	return summary, nil
}
