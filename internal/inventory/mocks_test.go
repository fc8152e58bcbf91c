package inventory

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/effect"
)

// MockApplier implements EffectApplier for testing
type MockApplier struct {
	mock.Mock
}

func (m *MockApplier) Apply(ctx context.Context, abilityText string, party *domain.Party, target string) ([]effect.Outcome, error) {
	args := m.Called(ctx, abilityText, party, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]effect.Outcome), args.Error(1)
}
