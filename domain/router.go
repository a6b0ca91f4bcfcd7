package domain

import (
	"github.com/osmosis-labs/osmosis/osmomath"
)

// SwapEstimate is the result of simulating one hop. All amounts are in
// display units.
type SwapEstimate struct {
	// AmountOut is the simulated output after fee and curve slippage.
	AmountOut osmomath.BigDec
	// IdealAmountOut is the fee-free, zero-impact spot-price output.
	// Used only for quoting impact, never as an executable amount.
	IdealAmountOut osmomath.BigDec
	// PriceImpact is a percentage: (ideal - out) / ideal * 100.
	PriceImpact osmomath.BigDec
	// LPFee is the input retained by the pool, in input-token display units.
	LPFee osmomath.BigDec
}

// PathEstimate is the result of simulating a whole path.
type PathEstimate struct {
	AmountOut osmomath.BigDec
	// PriceImpact is the sum of per-hop impact percentages. This is an
	// additive approximation of the compounded figure, kept for
	// compatibility with the executing contracts' quoting convention.
	PriceImpact osmomath.BigDec
	// TotalLPFee sums per-hop fees, each denominated in that hop's own
	// input token.
	TotalLPFee osmomath.BigDec
	// IdealAmountOut is the ideal output of the final hop only.
	IdealAmountOut osmomath.BigDec
}

// RoutablePool simulates swaps against a single pool in a fixed
// in/out direction.
type RoutablePool interface {
	GetAddress() string
	GetCodeHash() string
	GetTokenInID() string
	GetTokenOutID() string
	GetFee() osmomath.Dec

	// CalculateTokenOutByTokenIn simulates swapping amountIn (display
	// units of the in token) against the snapshot reserves. Returns an
	// infeasibility error for zero reserves or a non-positive result.
	CalculateTokenOutByTokenIn(amountIn osmomath.BigDec) (SwapEstimate, error)

	String() string
}

// Route is an ordered chain of routable pools. Hop i's output token is
// hop i+1's input token.
type Route interface {
	GetPools() []RoutablePool
	GetTokenIDs() []string
	GetTokenOutID() string

	// CalculateTokenOutByTokenIn simulates the route hop by hop,
	// strictly sequentially. Any infeasible hop fails the whole route.
	CalculateTokenOutByTokenIn(amountIn osmomath.BigDec) (PathEstimate, error)

	String() string
}

// RouteHop is the execution-time view of one leg of the winning path,
// carrying everything the on-chain router needs without further lookups.
type RouteHop struct {
	// FromAsset is the origin asset of the hop.
	FromAsset    AssetInfo `json:"from_asset"`
	PairAddress  string    `json:"pair_address"`
	PairCodeHash string    `json:"pair_code_hash"`
}

// Quote is the evaluated best path for a requested swap.
type Quote struct {
	TokenInID  string          `json:"token_in"`
	TokenOutID string          `json:"token_out"`
	AmountIn   osmomath.BigDec `json:"amount_in"`
	AmountOut  osmomath.BigDec `json:"amount_out"`
	// IdealAmountOut is the fee-free spot output of the final hop.
	IdealAmountOut osmomath.BigDec `json:"ideal_amount_out"`
	PriceImpact    osmomath.BigDec `json:"price_impact"`
	TotalLPFee     osmomath.BigDec `json:"total_lp_fee"`
	// GasCost is informational; it is not subtracted from AmountOut.
	GasCost uint64 `json:"gas_cost"`
	// Path is the winning candidate path.
	Path CandidatePath `json:"path"`
	// Route carries the resolved execution hops for the payload builder.
	Route []RouteHop `json:"route"`
}

// IsDirect returns true if the quote executes against a single pair
// contract rather than the router.
func (q Quote) IsDirect() bool {
	return len(q.Route) == 1
}
