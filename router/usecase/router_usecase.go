package usecase

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/secretswap/router/domain"
	"github.com/secretswap/router/domain/mvc"
	"github.com/secretswap/router/log"
	"github.com/secretswap/router/router/usecase/pools"
	"github.com/secretswap/router/router/usecase/route"
)

var _ mvc.RouterUsecase = &routerUseCaseImpl{}

type routerUseCaseImpl struct {
	poolsUsecase mvc.PoolsUsecase
	config       domain.RouterConfig
	gasConfig    domain.GasConfig
	logger       log.Logger
}

var (
	infeasiblePathCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "router_infeasible_paths_total",
			Help: "Total number of candidate paths discarded as infeasible during quoting",
		},
		[]string{"token_in", "token_out"},
	)
	noRouteCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "router_no_route_total",
			Help: "Total number of quote requests for which no feasible route existed",
		},
		[]string{"token_in", "token_out"},
	)
)

func init() {
	prometheus.MustRegister(infeasiblePathCounter)
	prometheus.MustRegister(noRouteCounter)
}

// NewRouterUsecase will create a new router use case object
func NewRouterUsecase(poolsUsecase mvc.PoolsUsecase, config domain.RouterConfig, gasConfig domain.GasConfig, logger log.Logger) mvc.RouterUsecase {
	if logger == nil {
		logger = &log.NoOpLogger{}
	}

	return &routerUseCaseImpl{
		poolsUsecase: poolsUsecase,
		config:       config,
		gasConfig:    gasConfig,
		logger:       logger,
	}
}

// GetQuote implements mvc.RouterUsecase.
// Enumerates candidate paths over a fresh snapshot set, simulates each
// one, and returns the path with the strictly greatest final output.
// Ties keep the first-encountered path. Infeasible paths are discarded
// individually; only if every path fails is domain.ErrNoRoute returned.
func (r *routerUseCaseImpl) GetQuote(ctx context.Context, tokenInID string, tokenOutID string, amountIn osmomath.BigDec) (*domain.Quote, error) {
	poolSnapshots, err := r.poolsUsecase.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}

	candidatePaths, err := GetCandidatePaths(poolSnapshots, tokenInID, tokenOutID, r.config.MaxHops, r.logger)
	if err != nil {
		return nil, err
	}

	poolsByAddr := poolsByAddress(poolSnapshots)

	var (
		bestPath     domain.CandidatePath
		bestEstimate domain.PathEstimate
		found        bool
	)

	for _, candidatePath := range candidatePaths.Paths {
		candidateRoute, err := routeFromCandidatePath(candidatePath, poolsByAddr)
		if err != nil {
			r.logger.Debug("discarding candidate path", zap.Stringer("path", pathStringer(candidatePath)), zap.Error(err))
			infeasiblePathCounter.WithLabelValues(tokenInID, tokenOutID).Inc()
			continue
		}

		estimate, err := candidateRoute.CalculateTokenOutByTokenIn(amountIn)
		if err != nil {
			r.logger.Debug("discarding infeasible path", zap.Stringer("route", candidateRoute), zap.Error(err))
			infeasiblePathCounter.WithLabelValues(tokenInID, tokenOutID).Inc()
			continue
		}

		if !found || estimate.AmountOut.GT(bestEstimate.AmountOut) {
			bestPath = candidatePath
			bestEstimate = estimate
			found = true
		}
	}

	if !found {
		noRouteCounter.WithLabelValues(tokenInID, tokenOutID).Inc()
		return nil, domain.ErrNoRoute
	}

	routeHops, err := resolveRouteHops(bestPath, poolsByAddr)
	if err != nil {
		return nil, err
	}

	return &domain.Quote{
		TokenInID:      tokenInID,
		TokenOutID:     tokenOutID,
		AmountIn:       amountIn,
		AmountOut:      bestEstimate.AmountOut,
		IdealAmountOut: bestEstimate.IdealAmountOut,
		PriceImpact:    bestEstimate.PriceImpact,
		TotalLPFee:     bestEstimate.TotalLPFee,
		GasCost:        r.gasConfig.QuoteGasCost(bestPath.NumHops()),
		Path:           bestPath,
		Route:          routeHops,
	}, nil
}

// GetCandidatePaths implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) GetCandidatePaths(ctx context.Context, tokenInID string, tokenOutID string) (domain.CandidatePaths, error) {
	poolSnapshots, err := r.poolsUsecase.GetAllPools(ctx)
	if err != nil {
		return domain.CandidatePaths{}, err
	}

	return GetCandidatePaths(poolSnapshots, tokenInID, tokenOutID, r.config.MaxHops, r.logger)
}

// routeFromCandidatePath binds a candidate path to the snapshots it
// traverses. A pool missing from the snapshot set fails the path.
func routeFromCandidatePath(path domain.CandidatePath, poolsByAddr map[string]domain.Pool) (domain.Route, error) {
	routablePools := make([]domain.RoutablePool, 0, len(path.Pools))

	for i, poolAddr := range path.Pools {
		pool, ok := poolsByAddr[poolAddr]
		if !ok {
			return nil, domain.PoolNotFoundError{PoolAddress: poolAddr}
		}

		routablePool, err := pools.NewRoutablePairPool(pool, path.Tokens[i], path.Tokens[i+1])
		if err != nil {
			return nil, err
		}

		routablePools = append(routablePools, routablePool)
	}

	return &route.RouteImpl{
		Pools:  routablePools,
		Tokens: path.Tokens,
	}, nil
}

// resolveRouteHops translates the winning path into execution hops
// carrying the origin asset of each leg, so the on-chain router needs
// no further lookups.
func resolveRouteHops(path domain.CandidatePath, poolsByAddr map[string]domain.Pool) ([]domain.RouteHop, error) {
	hops := make([]domain.RouteHop, 0, len(path.Pools))

	for i, poolAddr := range path.Pools {
		pool, ok := poolsByAddr[poolAddr]
		if !ok {
			return nil, domain.PoolNotFoundError{PoolAddress: poolAddr}
		}

		fromAsset, err := pool.GetAssetInfo(path.Tokens[i])
		if err != nil {
			return nil, err
		}

		hops = append(hops, domain.RouteHop{
			FromAsset:    fromAsset,
			PairAddress:  pool.Address,
			PairCodeHash: pool.CodeHash,
		})
	}

	return hops, nil
}

type pathStringer domain.CandidatePath

func (p pathStringer) String() string {
	out := ""
	for i, token := range p.Tokens {
		out += token
		if i < len(p.Pools) {
			out += " -(" + p.Pools[i] + ")-> "
		}
	}
	return out
}
