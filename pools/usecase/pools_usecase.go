package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"
	"go.uber.org/zap"

	"github.com/secretswap/router/domain"
	"github.com/secretswap/router/domain/cache"
	"github.com/secretswap/router/domain/mvc"
	"github.com/secretswap/router/log"
)

type poolsUseCase struct {
	querier       domain.ContractQuerier
	tokensUsecase mvc.TokensUsecase
	pairs         []domain.PairMetadata

	snapshotCache  *cache.Cache
	snapshotExpiry time.Duration

	logger log.Logger
}

var _ mvc.PoolsUsecase = &poolsUseCase{}

// NewPoolsUsecase returns the pool snapshot usecase. snapshotExpiry of
// zero disables caching so that every estimation sees fresh reserves.
func NewPoolsUsecase(querier domain.ContractQuerier, tokensUsecase mvc.TokensUsecase, pairs []domain.PairMetadata, snapshotExpiry time.Duration, snapshotCache *cache.Cache, logger log.Logger) mvc.PoolsUsecase {
	if logger == nil {
		logger = &log.NoOpLogger{}
	}
	if snapshotCache == nil {
		snapshotCache = cache.New()
	}

	return &poolsUseCase{
		querier:        querier,
		tokensUsecase:  tokensUsecase,
		pairs:          pairs,
		snapshotCache:  snapshotCache,
		snapshotExpiry: snapshotExpiry,
		logger:         logger,
	}
}

// pairQueryRequest is the read-only reserve query: {"pool": {}}.
type pairQueryRequest struct {
	Pool struct{} `json:"pool"`
}

type poolAsset struct {
	Info   domain.AssetInfo `json:"info"`
	Amount string           `json:"amount"`
}

// pairQueryResult is the tagged union of everything a pair query may
// return: a valid reserve pair, a viewing-key rejection, or an unknown
// shape. Parsed exhaustively rather than probed field by field.
type pairQueryResult struct {
	Assets     []poolAsset `json:"assets,omitempty"`
	TotalShare *string     `json:"total_share,omitempty"`

	ViewingKeyError *struct {
		Msg string `json:"msg"`
	} `json:"viewing_key_error,omitempty"`
}

// GetAllPools implements mvc.PoolsUsecase.
// A pair whose query or parse fails is skipped and logged; one bad pair
// must not take down the whole snapshot set.
func (p *poolsUseCase) GetAllPools(ctx context.Context) ([]domain.Pool, error) {
	pools := make([]domain.Pool, 0, len(p.pairs))

	for _, pair := range p.pairs {
		pool, err := p.getPool(ctx, pair)
		if err != nil {
			p.logger.Error("failed to snapshot pair, skip silently", zap.String("pair", pair.Address), zap.Error(err))
			continue
		}

		pools = append(pools, pool)
	}

	return pools, nil
}

func (p *poolsUseCase) getPool(ctx context.Context, pair domain.PairMetadata) (domain.Pool, error) {
	if p.snapshotExpiry > 0 {
		if cached, found := p.snapshotCache.Get(pair.Address); found {
			if pool, ok := cached.(domain.Pool); ok {
				return pool, nil
			}
		}
	}

	var raw json.RawMessage
	if err := p.querier.QuerySmartContract(ctx, pair.Address, pair.CodeHash, pairQueryRequest{}, &raw); err != nil {
		return domain.Pool{}, err
	}

	pool, err := p.parsePoolResponse(raw, pair)
	if err != nil {
		return domain.Pool{}, err
	}

	if p.snapshotExpiry > 0 {
		p.snapshotCache.Set(pair.Address, pool, p.snapshotExpiry)
	}

	return pool, nil
}

// parsePoolResponse validates the tagged-union query response and
// converts a valid reserve pair into a domain.Pool snapshot.
func (p *poolsUseCase) parsePoolResponse(raw json.RawMessage, pair domain.PairMetadata) (domain.Pool, error) {
	var result pairQueryResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.Pool{}, err
	}

	switch {
	case result.ViewingKeyError != nil:
		return domain.Pool{}, ViewingKeyError{PairAddress: pair.Address, Msg: result.ViewingKeyError.Msg}
	case len(result.Assets) == 2:
		// Valid reserve pair, handled below.
	default:
		return domain.Pool{}, UnknownResponseError{PairAddress: pair.Address}
	}

	pool := domain.Pool{
		Address:  pair.Address,
		CodeHash: pair.CodeHash,
		Fee:      pair.Fee,
		Reserves: make(map[string]domain.Reserve, 2),
	}

	for i, asset := range result.Assets {
		if err := asset.Info.Validate(); err != nil {
			return domain.Pool{}, err
		}

		amount, ok := osmomath.NewIntFromString(asset.Amount)
		if !ok {
			return domain.Pool{}, InvalidAmountError{PairAddress: pair.Address, Amount: asset.Amount}
		}

		decimals, err := p.tokensUsecase.GetDecimals(asset.Info.ID())
		if err != nil {
			return domain.Pool{}, err
		}

		pool.AssetInfos[i] = asset.Info
		pool.Reserves[asset.Info.ID()] = domain.Reserve{
			Amount:   amount,
			Decimals: decimals,
		}
	}

	if err := pool.Validate(); err != nil {
		return domain.Pool{}, err
	}

	return pool, nil
}
