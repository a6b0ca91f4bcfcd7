package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/osmosis-labs/osmosis/osmomath"
	"go.uber.org/zap"

	"github.com/secretswap/router/domain"
	"github.com/secretswap/router/domain/mvc"
	"github.com/secretswap/router/log"
)

var _ mvc.TxUsecase = &txUseCase{}

type txUseCase struct {
	routerAddress  string
	routerCodeHash string
	gasConfig      domain.GasConfig
	tokensUsecase  mvc.TokensUsecase
	submitter      domain.TxSubmitter
	logger         log.Logger
}

// NewTxUsecase will create a new execution payload use case object
func NewTxUsecase(routerConfig domain.RouterConfig, gasConfig domain.GasConfig, tokensUsecase mvc.TokensUsecase, submitter domain.TxSubmitter, logger log.Logger) mvc.TxUsecase {
	if logger == nil {
		logger = &log.NoOpLogger{}
	}

	return &txUseCase{
		routerAddress:  routerConfig.RouterContractAddress,
		routerCodeHash: routerConfig.RouterCodeHash,
		gasConfig:      gasConfig,
		tokensUsecase:  tokensUsecase,
		submitter:      submitter,
		logger:         logger,
	}
}

// snip20SendMsg is a token transfer with an embedded base64 callback.
type snip20SendMsg struct {
	Send snip20Send `json:"send"`
}

type snip20Send struct {
	Recipient         string `json:"recipient"`
	RecipientCodeHash string `json:"recipient_code_hash,omitempty"`
	Amount            string `json:"amount"`
	Msg               string `json:"msg"`
}

// swapHookMsg is the direct-swap callback executed by the pair contract.
type swapHookMsg struct {
	Swap swapHook `json:"swap"`
}

type swapHook struct {
	ExpectedReturn string `json:"expected_return"`
	To             string `json:"to"`
}

// nativeSwapMsg is the direct swap executed on the pair with sent funds.
type nativeSwapMsg struct {
	Swap nativeSwap `json:"swap"`
}

type nativeSwap struct {
	OfferAsset     offerAsset `json:"offer_asset"`
	ExpectedReturn string     `json:"expected_return"`
	To             string     `json:"to"`
}

type offerAsset struct {
	Info   domain.AssetInfo `json:"info"`
	Amount string           `json:"amount"`
}

// routeMsg is the multi-hop route executed by the router contract.
type routeMsg struct {
	Hops           []routerHop `json:"hops"`
	ExpectedReturn string      `json:"expected_return"`
	To             string      `json:"to"`
}

type routerHop struct {
	FromToken    routerHopToken `json:"from_token"`
	PairAddress  string         `json:"pair_address"`
	PairCodeHash string         `json:"pair_code_hash"`
}

// routerHopToken marks the origin asset of a hop: a SNIP-20 contract or
// the native coin.
type routerHopToken struct {
	Snip20 *routerSnip20 `json:"snip20,omitempty"`
	Scrt   *struct{}     `json:"scrt,omitempty"`
}

type routerSnip20 struct {
	Address  string `json:"address"`
	CodeHash string `json:"code_hash"`
}

// BuildSwapMsg implements mvc.TxUsecase.
func (t *txUseCase) BuildSwapMsg(quote *domain.Quote, slippageTolerance osmomath.Dec, recipient string) (domain.ExecuteMsg, uint64, error) {
	if quote == nil || len(quote.Route) == 0 {
		return domain.ExecuteMsg{}, 0, fmt.Errorf("quote has no route to execute")
	}

	isDirect := quote.IsDirect()

	// Configuration errors must short-circuit before anything else.
	if !isDirect {
		if isPlaceholder(t.routerAddress) {
			return domain.ExecuteMsg{}, 0, domain.RouterNotConfiguredError{Field: "address"}
		}
		if isPlaceholder(t.routerCodeHash) {
			return domain.ExecuteMsg{}, 0, domain.RouterNotConfiguredError{Field: "code hash"}
		}
	}

	decimalsIn, err := t.tokensUsecase.GetDecimals(quote.TokenInID)
	if err != nil {
		return domain.ExecuteMsg{}, 0, err
	}
	decimalsOut, err := t.tokensUsecase.GetDecimals(quote.TokenOutID)
	if err != nil {
		return domain.ExecuteMsg{}, 0, err
	}

	// Truncation, never rounding up: the executed amounts must not
	// exceed what the user authorized.
	offerAmount := ToBaseUnits(quote.AmountIn, decimalsIn)

	minReceived := quote.AmountOut.Mul(osmomath.BigDecFromDec(osmomath.OneDec().Sub(slippageTolerance)))
	expectedReturn := ToBaseUnits(minReceived, decimalsOut)

	gasLimit := EstimateGasLimit(t.gasConfig, len(quote.Route))

	firstHop := quote.Route[0]

	var msg domain.ExecuteMsg
	if isDirect {
		msg, err = t.buildDirectSwapMsg(firstHop, offerAmount, expectedReturn, recipient, quote.TokenInID)
	} else {
		msg, err = t.buildRoutedSwapMsg(quote.Route, offerAmount, expectedReturn, recipient, quote.TokenInID)
	}
	if err != nil {
		return domain.ExecuteMsg{}, 0, err
	}

	return msg, gasLimit, nil
}

// buildDirectSwapMsg targets the pair contract itself: a SNIP-20 send
// with a swap callback, or a native swap with sent funds.
func (t *txUseCase) buildDirectSwapMsg(hop domain.RouteHop, offerAmount, expectedReturn osmomath.Int, recipient, tokenInID string) (domain.ExecuteMsg, error) {
	if hop.FromAsset.IsNative() {
		bz, err := json.Marshal(nativeSwapMsg{
			Swap: nativeSwap{
				OfferAsset: offerAsset{
					Info:   hop.FromAsset,
					Amount: offerAmount.String(),
				},
				ExpectedReturn: expectedReturn.String(),
				To:             recipient,
			},
		})
		if err != nil {
			return domain.ExecuteMsg{}, err
		}

		return domain.ExecuteMsg{
			ContractAddr: hop.PairAddress,
			CodeHash:     hop.PairCodeHash,
			Msg:          bz,
			SentFunds: []domain.NativeCoin{
				{Denom: hop.FromAsset.ID(), Amount: offerAmount},
			},
		}, nil
	}

	token, err := t.tokensUsecase.GetToken(tokenInID)
	if err != nil {
		return domain.ExecuteMsg{}, err
	}

	hook, err := json.Marshal(swapHookMsg{
		Swap: swapHook{
			ExpectedReturn: expectedReturn.String(),
			To:             recipient,
		},
	})
	if err != nil {
		return domain.ExecuteMsg{}, err
	}

	return t.buildSnip20Send(token, hop.PairAddress, hop.PairCodeHash, offerAmount, hook)
}

// buildRoutedSwapMsg wraps the hop list into a single opaque payload
// addressed to the router contract.
func (t *txUseCase) buildRoutedSwapMsg(hops []domain.RouteHop, offerAmount, expectedReturn osmomath.Int, recipient, tokenInID string) (domain.ExecuteMsg, error) {
	routerHops := make([]routerHop, 0, len(hops))
	for _, hop := range hops {
		hopToken := routerHopToken{}
		if hop.FromAsset.IsNative() {
			hopToken.Scrt = &struct{}{}
		} else {
			hopToken.Snip20 = &routerSnip20{
				Address:  hop.FromAsset.Token.ContractAddr,
				CodeHash: hop.FromAsset.Token.TokenCodeHash,
			}
		}

		routerHops = append(routerHops, routerHop{
			FromToken:    hopToken,
			PairAddress:  hop.PairAddress,
			PairCodeHash: hop.PairCodeHash,
		})
	}

	routeBz, err := json.Marshal(routeMsg{
		Hops:           routerHops,
		ExpectedReturn: expectedReturn.String(),
		To:             recipient,
	})
	if err != nil {
		return domain.ExecuteMsg{}, err
	}

	if hops[0].FromAsset.IsNative() {
		// Native origin executes the router directly with the funds
		// attached; later hops stay inside the routed payload.
		return domain.ExecuteMsg{
			ContractAddr: t.routerAddress,
			CodeHash:     t.routerCodeHash,
			Msg:          routeBz,
			SentFunds: []domain.NativeCoin{
				{Denom: hops[0].FromAsset.ID(), Amount: offerAmount},
			},
		}, nil
	}

	token, err := t.tokensUsecase.GetToken(tokenInID)
	if err != nil {
		return domain.ExecuteMsg{}, err
	}

	return t.buildSnip20Send(token, t.routerAddress, t.routerCodeHash, offerAmount, routeBz)
}

func (t *txUseCase) buildSnip20Send(token domain.Token, recipient, recipientCodeHash string, amount osmomath.Int, callback []byte) (domain.ExecuteMsg, error) {
	bz, err := json.Marshal(snip20SendMsg{
		Send: snip20Send{
			Recipient:         recipient,
			RecipientCodeHash: recipientCodeHash,
			Amount:            amount.String(),
			Msg:               base64.StdEncoding.EncodeToString(callback),
		},
	})
	if err != nil {
		return domain.ExecuteMsg{}, err
	}

	return domain.ExecuteMsg{
		ContractAddr: token.Address,
		CodeHash:     token.CodeHash,
		Msg:          bz,
	}, nil
}

// ExecuteSwap implements mvc.TxUsecase.
func (t *txUseCase) ExecuteSwap(ctx context.Context, msg domain.ExecuteMsg, gasLimit uint64) (domain.TxResult, error) {
	result, err := t.submitter.SubmitTx(ctx, msg, gasLimit)
	if err != nil {
		return domain.TxResult{}, err
	}

	if !result.IsSuccess() {
		t.logger.Error("swap execution failed",
			zap.Uint32("code", result.Code),
			zap.String("raw_log", result.RawLog),
		)
		return result, domain.TxFailedError{Code: result.Code, RawLog: result.RawLog}
	}

	return result, nil
}

// ToBaseUnits converts a display amount into raw base units using
// floor(amount * 10^decimals).
func ToBaseUnits(amount osmomath.BigDec, decimals int32) osmomath.Int {
	if amount.IsNil() || amount.IsNegative() {
		return osmomath.ZeroInt()
	}

	scale := osmomath.NewBigDecFromBigInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	return amount.Mul(scale).Dec().TruncateInt()
}

// isPlaceholder reports whether a configured contract reference is
// unset or an obvious template value.
func isPlaceholder(value string) bool {
	if value == "" {
		return true
	}
	for _, c := range value {
		if c != '0' {
			return false
		}
	}
	return true
}
