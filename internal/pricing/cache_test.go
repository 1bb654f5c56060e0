package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPredictor struct {
	mock.Mock
}

func (m *mockPredictor) PredictPrice(ctx context.Context, region, label string) (float64, error) {
	args := m.Called(ctx, region, label)
	return args.Get(0).(float64), args.Error(1)
}

func TestCachedPredictor(t *testing.T) {
	next := new(mockPredictor)
	next.On("PredictPrice", mock.Anything, "Karnataka", "Tomato").Return(28.0, nil).Once()
	next.On("PredictPrice", mock.Anything, "Karnataka", "Kiwi").Return(0.0, nil).Once()
	next.On("PredictPrice", mock.Anything, "Karnataka", "Mango").Return(0.0, errors.New("timeout")).Twice()

	cached := NewCachedPredictor(next, 16, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		price, err := cached.PredictPrice(ctx, "Karnataka", "Tomato")
		require.NoError(t, err)
		assert.Equal(t, 28.0, price)

		price, err = cached.PredictPrice(ctx, "Karnataka", "Kiwi")
		require.NoError(t, err)
		assert.Zero(t, price, "unknown prices are cached as zero")

		_, err = cached.PredictPrice(ctx, "Karnataka", "Mango")
		assert.Error(t, err, "errors are not cached")
	}
	next.AssertExpectations(t)
}
