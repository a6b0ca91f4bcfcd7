package mvc

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/secretswap/router/domain"
)

// RouterUsecase represent the router's usecases
type RouterUsecase interface {
	// GetQuote estimates the best path for swapping amountIn of tokenInID
	// into tokenOutID over the current pool snapshots.
	// Returns domain.ErrNoRoute if no candidate path is feasible.
	GetQuote(ctx context.Context, tokenInID string, tokenOutID string, amountIn osmomath.BigDec) (*domain.Quote, error)

	// GetCandidatePaths enumerates all simple paths between the tokens
	// within the configured hop bound, without simulating them.
	GetCandidatePaths(ctx context.Context, tokenInID string, tokenOutID string) (domain.CandidatePaths, error)
}
