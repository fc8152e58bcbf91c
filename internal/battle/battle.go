package battle

import (
	"context"
	"fmt"

	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/logger"
)

// Run plays a match between a and b to completion, mutating both parties.
// It stops early with ctx's error if ctx is cancelled between rounds.
func Run(ctx context.Context, a, b *domain.Party, opts Options) (*domain.BattleResult, error) {
	m, err := NewMatch(a, b, opts)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgMatchStarted,
		"match_id", m.ID(), "size_a", a.Len(), "size_b", b.Len(),
		"alive_a", a.AliveCount(), "alive_b", b.AliveCount())

	for !m.Done() {
		if err := ctx.Err(); err != nil {
			return m.Result(), fmt.Errorf(ErrFmtMatchAborted, m.ID(), err)
		}
		m.Round(ctx)
	}

	return m.Result(), nil
}
