package mvc

import (
	"context"

	"github.com/secretswap/router/domain"
)

// PoolsUsecase represent the pool snapshots' usecases
type PoolsUsecase interface {
	// GetAllPools returns a snapshot of every registered pair. Pairs
	// whose query fails are skipped, not fatal for the whole set.
	GetAllPools(ctx context.Context) ([]domain.Pool, error)
}
