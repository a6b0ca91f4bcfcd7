package route

import (
	"fmt"
	"strings"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/secretswap/router/domain"
)

var _ domain.Route = &RouteImpl{}

// RouteImpl chains routable pools; hop i's output token is hop i+1's
// input token. Tokens has len(Pools)+1 entries.
type RouteImpl struct {
	Pools  []domain.RoutablePool `json:"pools"`
	Tokens []string              `json:"tokens"`
}

// CalculateTokenOutByTokenIn implements domain.Route.
// Hops are simulated strictly sequentially since each hop's output is
// the next hop's input. Any infeasible hop fails the whole route.
func (r *RouteImpl) CalculateTokenOutByTokenIn(amountIn osmomath.BigDec) (domain.PathEstimate, error) {
	if len(r.Pools) == 0 {
		return domain.PathEstimate{}, fmt.Errorf("route has no pools")
	}

	var (
		totalLPFee    = osmomath.ZeroBigDec()
		totalImpact   = osmomath.ZeroBigDec()
		lastIdealOut  = osmomath.ZeroBigDec()
		currentAmount = amountIn
	)

	for _, pool := range r.Pools {
		estimate, err := pool.CalculateTokenOutByTokenIn(currentAmount)
		if err != nil {
			return domain.PathEstimate{}, err
		}

		totalLPFee = totalLPFee.Add(estimate.LPFee)
		// Summing per-hop percentages is an additive approximation of
		// the compounded impact, kept for quoting compatibility.
		totalImpact = totalImpact.Add(estimate.PriceImpact)
		lastIdealOut = estimate.IdealAmountOut

		currentAmount = estimate.AmountOut
	}

	return domain.PathEstimate{
		AmountOut:      currentAmount,
		PriceImpact:    totalImpact,
		TotalLPFee:     totalLPFee,
		IdealAmountOut: lastIdealOut,
	}, nil
}

// GetPools implements domain.Route.
func (r *RouteImpl) GetPools() []domain.RoutablePool {
	return r.Pools
}

// GetTokenIDs implements domain.Route.
func (r *RouteImpl) GetTokenIDs() []string {
	return r.Tokens
}

// GetTokenOutID implements domain.Route.
// Returns the token out of the last pool, or empty for an empty route.
func (r *RouteImpl) GetTokenOutID() string {
	if len(r.Pools) == 0 {
		return ""
	}

	return r.Pools[len(r.Pools)-1].GetTokenOutID()
}

// String implements domain.Route.
func (r *RouteImpl) String() string {
	var strBuilder strings.Builder
	for _, pool := range r.Pools {
		_, _ = strBuilder.WriteString(fmt.Sprintf("{{%s}}", pool.String()))
	}

	return strBuilder.String()
}
