package mvc

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/secretswap/router/domain"
)

// TxUsecase represent the execution payload usecases
type TxUsecase interface {
	// BuildSwapMsg translates a quote plus the caller's slippage
	// tolerance into a protocol-ready execute message and a gas limit.
	// Fails with a configuration error before any network call if the
	// router contract is needed but not configured.
	BuildSwapMsg(quote *domain.Quote, slippageTolerance osmomath.Dec, recipient string) (domain.ExecuteMsg, uint64, error)

	// ExecuteSwap submits the message exactly once. A non-success chain
	// result is returned verbatim as domain.TxFailedError; never retried.
	ExecuteSwap(ctx context.Context, msg domain.ExecuteMsg, gasLimit uint64) (domain.TxResult, error)
}
