package pools

import (
	"fmt"
	"math/big"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/secretswap/router/domain"
)

var _ domain.RoutablePool = &routablePairPool{}

var (
	oneBigDec     = osmomath.NewBigDec(1)
	hundredBigDec = osmomath.NewBigDec(100)
)

// routablePairPool simulates constant-product swaps against one pair
// snapshot in a fixed direction. Pure; no network access.
type routablePairPool struct {
	pool domain.Pool

	tokenInID  string
	tokenOutID string

	reserveIn  domain.Reserve
	reserveOut domain.Reserve
}

// NewRoutablePairPool binds a pool snapshot to a swap direction.
// Returns an error if either token is not held by the pair.
func NewRoutablePairPool(pool domain.Pool, tokenInID, tokenOutID string) (domain.RoutablePool, error) {
	reserveIn, err := pool.GetReserve(tokenInID)
	if err != nil {
		return nil, err
	}

	reserveOut, err := pool.GetReserve(tokenOutID)
	if err != nil {
		return nil, err
	}

	return &routablePairPool{
		pool:       pool,
		tokenInID:  tokenInID,
		tokenOutID: tokenOutID,
		reserveIn:  reserveIn,
		reserveOut: reserveOut,
	}, nil
}

// CalculateTokenOutByTokenIn implements domain.RoutablePool.
// Applies the fee to the input side, then the constant-product curve:
//
//	out = Y - (X * Y) / (X + in*(1-f))
//
// entirely in arbitrary-precision decimals. The ideal output is the
// fee-free spot projection in*Y/X, used only to quote price impact.
func (r *routablePairPool) CalculateTokenOutByTokenIn(amountIn osmomath.BigDec) (domain.SwapEstimate, error) {
	if amountIn.IsNil() || amountIn.IsNegative() {
		return domain.SwapEstimate{}, domain.InfeasibleSwapError{
			PoolAddress: r.pool.Address,
			TokenInID:   r.tokenInID,
			TokenOutID:  r.tokenOutID,
		}
	}

	if r.reserveIn.IsZero() {
		return domain.SwapEstimate{}, domain.ZeroReserveError{PoolAddress: r.pool.Address, AssetID: r.tokenInID}
	}
	if r.reserveOut.IsZero() {
		return domain.SwapEstimate{}, domain.ZeroReserveError{PoolAddress: r.pool.Address, AssetID: r.tokenOutID}
	}

	reserveIn := osmomath.BigDecFromSDKInt(r.reserveIn.Amount)
	reserveOut := osmomath.BigDecFromSDKInt(r.reserveOut.Amount)

	inScale := tenPow(r.reserveIn.Decimals)
	outScale := tenPow(r.reserveOut.Decimals)

	amountInRaw := amountIn.Mul(inScale)
	amountInAfterFee := amountInRaw.Mul(oneBigDec.Sub(osmomath.BigDecFromDec(r.pool.Fee)))

	amountOutRaw := reserveOut.Sub(reserveIn.Mul(reserveOut).Quo(reserveIn.Add(amountInAfterFee)))
	if amountOutRaw.IsNil() || amountOutRaw.IsNegative() {
		return domain.SwapEstimate{}, domain.InfeasibleSwapError{
			PoolAddress: r.pool.Address,
			TokenInID:   r.tokenInID,
			TokenOutID:  r.tokenOutID,
		}
	}

	amountOut := amountOutRaw.Quo(outScale)

	// Fee-free, zero-impact reference output. A non-positive ideal is
	// clamped to zero so a degenerate snapshot can never quote a
	// negative impact.
	idealOut := amountInRaw.Mul(reserveOut).Quo(reserveIn).Quo(outScale)
	priceImpact := osmomath.ZeroBigDec()
	if idealOut.IsNil() || !idealOut.IsPositive() {
		idealOut = osmomath.ZeroBigDec()
	} else {
		priceImpact = idealOut.Sub(amountOut).Quo(idealOut).Mul(hundredBigDec)
	}

	lpFee := amountIn.Sub(amountInAfterFee.Quo(inScale))

	return domain.SwapEstimate{
		AmountOut:      amountOut,
		IdealAmountOut: idealOut,
		PriceImpact:    priceImpact,
		LPFee:          lpFee,
	}, nil
}

// GetAddress implements domain.RoutablePool.
func (r *routablePairPool) GetAddress() string {
	return r.pool.Address
}

// GetCodeHash implements domain.RoutablePool.
func (r *routablePairPool) GetCodeHash() string {
	return r.pool.CodeHash
}

// GetTokenInID implements domain.RoutablePool.
func (r *routablePairPool) GetTokenInID() string {
	return r.tokenInID
}

// GetTokenOutID implements domain.RoutablePool.
func (r *routablePairPool) GetTokenOutID() string {
	return r.tokenOutID
}

// GetFee implements domain.RoutablePool.
func (r *routablePairPool) GetFee() osmomath.Dec {
	return r.pool.Fee
}

// String implements domain.RoutablePool.
func (r *routablePairPool) String() string {
	return fmt.Sprintf("pool (%s), in (%s), out (%s)", r.pool.Address, r.tokenInID, r.tokenOutID)
}

// tenPow returns 10^decimals as a BigDec. Decimals are non-negative.
func tenPow(decimals int32) osmomath.BigDec {
	return osmomath.NewBigDecFromBigInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
}
