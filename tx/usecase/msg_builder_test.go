package usecase_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/require"

	"github.com/secretswap/router/domain"
	"github.com/secretswap/router/domain/mocks"
	tokensusecase "github.com/secretswap/router/tokens/usecase"
	"github.com/secretswap/router/tx/usecase"
)

const (
	tokenAAddr = "secret1tokenaaddr"
	tokenAHash = "tokenahash"
	tokenBAddr = "secret1tokenbaddr"
	tokenBHash = "tokenbhash"
	tokenCAddr = "secret1tokencaddr"
	tokenCHash = "tokenchash"

	nativeDenom = "uscrt"

	pairABAddr = "secret1pairabaddr"
	pairABHash = "pairabhash"
	pairCBAddr = "secret1paircbaddr"
	pairCBHash = "paircbhash"

	routerAddr = "secret1routeraddr"
	routerHash = "routerhash"

	recipient = "secret1recipient"
)

var (
	registry = []domain.Token{
		{Address: tokenAAddr, CodeHash: tokenAHash, Symbol: "TKA", Decimals: 6},
		{Address: tokenBAddr, CodeHash: tokenBHash, Symbol: "TKB", Decimals: 6},
		{Address: tokenCAddr, CodeHash: tokenCHash, Symbol: "TKC", Decimals: 6},
		{Address: nativeDenom, Symbol: "SCRT", Decimals: 6},
	}

	routerConfig = domain.RouterConfig{
		MaxHops:               4,
		RouterContractAddress: routerAddr,
		RouterCodeHash:        routerHash,
	}

	gasConfig = domain.GasConfig{
		DirectSwapGas: 400_000,
		RouterHopGas:  600_000,
		BaseGas:       250_000,
		PerHopGas:     350_000,
		MaxGasLimit:   3_000_000,
	}
)

// Wire shapes the payload builder must emit, mirrored for decoding.
type snip20SendWire struct {
	Send struct {
		Recipient         string `json:"recipient"`
		RecipientCodeHash string `json:"recipient_code_hash"`
		Amount            string `json:"amount"`
		Msg               string `json:"msg"`
	} `json:"send"`
}

type swapHookWire struct {
	Swap struct {
		ExpectedReturn string `json:"expected_return"`
		To             string `json:"to"`
	} `json:"swap"`
}

type routeWire struct {
	Hops []struct {
		FromToken struct {
			Snip20 *struct {
				Address  string `json:"address"`
				CodeHash string `json:"code_hash"`
			} `json:"snip20"`
			Scrt *struct{} `json:"scrt"`
		} `json:"from_token"`
		PairAddress  string `json:"pair_address"`
		PairCodeHash string `json:"pair_code_hash"`
	} `json:"hops"`
	ExpectedReturn string `json:"expected_return"`
	To             string `json:"to"`
}

func newDirectQuote() *domain.Quote {
	return &domain.Quote{
		TokenInID:  tokenAAddr,
		TokenOutID: tokenBAddr,
		AmountIn:   osmomath.MustNewBigDecFromStr("0.1"),
		AmountOut:  osmomath.MustNewBigDecFromStr("0.181322"),
		Route: []domain.RouteHop{
			{
				FromAsset:    domain.NewTokenAssetInfo(tokenAAddr, tokenAHash),
				PairAddress:  pairABAddr,
				PairCodeHash: pairABHash,
			},
		},
	}
}

func newRoutedQuote() *domain.Quote {
	return &domain.Quote{
		TokenInID:  tokenAAddr,
		TokenOutID: tokenBAddr,
		AmountIn:   osmomath.MustNewBigDecFromStr("0.1"),
		AmountOut:  osmomath.MustNewBigDecFromStr("0.18"),
		Route: []domain.RouteHop{
			{
				FromAsset:    domain.NewTokenAssetInfo(tokenAAddr, tokenAHash),
				PairAddress:  pairABAddr,
				PairCodeHash: pairABHash,
			},
			{
				FromAsset:    domain.NewTokenAssetInfo(tokenCAddr, tokenCHash),
				PairAddress:  pairCBAddr,
				PairCodeHash: pairCBHash,
			},
		},
	}
}

func TestBuildSwapMsg_DirectSnip20(t *testing.T) {
	txUsecase := usecase.NewTxUsecase(routerConfig, gasConfig, tokensusecase.NewTokensUsecase(registry), nil, nil)

	msg, gasLimit, err := txUsecase.BuildSwapMsg(newDirectQuote(), osmomath.MustNewDecFromStr("0.01"), recipient)
	require.NoError(t, err)

	// A direct swap targets the input token contract, never the router.
	require.Equal(t, tokenAAddr, msg.ContractAddr)
	require.Equal(t, tokenAHash, msg.CodeHash)
	require.Empty(t, msg.SentFunds)

	var send snip20SendWire
	require.NoError(t, json.Unmarshal(msg.Msg, &send))

	require.Equal(t, pairABAddr, send.Send.Recipient)
	require.Equal(t, pairABHash, send.Send.RecipientCodeHash)
	require.Equal(t, "100000", send.Send.Amount)

	hookBz, err := base64.StdEncoding.DecodeString(send.Send.Msg)
	require.NoError(t, err)

	var hook swapHookWire
	require.NoError(t, json.Unmarshal(hookBz, &hook))

	// floor(0.181322 * 0.99 * 1e6)
	require.Equal(t, "179508", hook.Swap.ExpectedReturn)
	require.Equal(t, recipient, hook.Swap.To)

	require.Equal(t, gasConfig.BaseGas+gasConfig.PerHopGas, gasLimit)
}

func TestBuildSwapMsg_RoutedSnip20(t *testing.T) {
	txUsecase := usecase.NewTxUsecase(routerConfig, gasConfig, tokensusecase.NewTokensUsecase(registry), nil, nil)

	msg, gasLimit, err := txUsecase.BuildSwapMsg(newRoutedQuote(), osmomath.MustNewDecFromStr("0.01"), recipient)
	require.NoError(t, err)

	// A routed swap still executes the input token contract, sending the
	// funds to the router with the hop list embedded.
	require.Equal(t, tokenAAddr, msg.ContractAddr)
	require.Empty(t, msg.SentFunds)

	var send snip20SendWire
	require.NoError(t, json.Unmarshal(msg.Msg, &send))

	require.Equal(t, routerAddr, send.Send.Recipient)
	require.Equal(t, routerHash, send.Send.RecipientCodeHash)
	require.Equal(t, "100000", send.Send.Amount)

	routeBz, err := base64.StdEncoding.DecodeString(send.Send.Msg)
	require.NoError(t, err)

	var route routeWire
	require.NoError(t, json.Unmarshal(routeBz, &route))

	require.Len(t, route.Hops, 2)

	require.NotNil(t, route.Hops[0].FromToken.Snip20)
	require.Equal(t, tokenAAddr, route.Hops[0].FromToken.Snip20.Address)
	require.Equal(t, tokenAHash, route.Hops[0].FromToken.Snip20.CodeHash)
	require.Equal(t, pairABAddr, route.Hops[0].PairAddress)
	require.Equal(t, pairABHash, route.Hops[0].PairCodeHash)

	require.NotNil(t, route.Hops[1].FromToken.Snip20)
	require.Equal(t, tokenCAddr, route.Hops[1].FromToken.Snip20.Address)
	require.Equal(t, pairCBAddr, route.Hops[1].PairAddress)

	// floor(0.18 * 0.99 * 1e6)
	require.Equal(t, "178200", route.ExpectedReturn)
	require.Equal(t, recipient, route.To)

	require.Equal(t, gasConfig.BaseGas+2*gasConfig.PerHopGas, gasLimit)
}

func TestBuildSwapMsg_NativeDirect(t *testing.T) {
	quote := newDirectQuote()
	quote.TokenInID = nativeDenom
	quote.Route[0].FromAsset = domain.NewNativeAssetInfo(nativeDenom)

	txUsecase := usecase.NewTxUsecase(routerConfig, gasConfig, tokensusecase.NewTokensUsecase(registry), nil, nil)

	msg, _, err := txUsecase.BuildSwapMsg(quote, osmomath.MustNewDecFromStr("0.01"), recipient)
	require.NoError(t, err)

	// Native input executes the pair itself with the coins attached.
	require.Equal(t, pairABAddr, msg.ContractAddr)
	require.Equal(t, pairABHash, msg.CodeHash)

	require.Len(t, msg.SentFunds, 1)
	require.Equal(t, nativeDenom, msg.SentFunds[0].Denom)
	require.Equal(t, "100000", msg.SentFunds[0].Amount.String())
}

func TestBuildSwapMsg_NativeRouted(t *testing.T) {
	quote := newRoutedQuote()
	quote.TokenInID = nativeDenom
	quote.Route[0].FromAsset = domain.NewNativeAssetInfo(nativeDenom)

	txUsecase := usecase.NewTxUsecase(routerConfig, gasConfig, tokensusecase.NewTokensUsecase(registry), nil, nil)

	msg, _, err := txUsecase.BuildSwapMsg(quote, osmomath.MustNewDecFromStr("0.01"), recipient)
	require.NoError(t, err)

	// Native input executes the router directly; no SNIP-20 wrapping.
	require.Equal(t, routerAddr, msg.ContractAddr)
	require.Equal(t, routerHash, msg.CodeHash)

	require.Len(t, msg.SentFunds, 1)
	require.Equal(t, nativeDenom, msg.SentFunds[0].Denom)

	var route routeWire
	require.NoError(t, json.Unmarshal(msg.Msg, &route))

	require.Len(t, route.Hops, 2)
	require.NotNil(t, route.Hops[0].FromToken.Scrt)
	require.Nil(t, route.Hops[0].FromToken.Snip20)
}

func TestBuildSwapMsg_RouterNotConfigured(t *testing.T) {
	testcases := map[string]domain.RouterConfig{
		"empty address":       {MaxHops: 4, RouterCodeHash: routerHash},
		"placeholder address": {MaxHops: 4, RouterContractAddress: "0000000000", RouterCodeHash: routerHash},
		"empty code hash":     {MaxHops: 4, RouterContractAddress: routerAddr},
	}

	for name, config := range testcases {
		t.Run(name, func(t *testing.T) {
			txUsecase := usecase.NewTxUsecase(config, gasConfig, tokensusecase.NewTokensUsecase(registry), nil, nil)

			_, _, err := txUsecase.BuildSwapMsg(newRoutedQuote(), osmomath.MustNewDecFromStr("0.01"), recipient)
			require.Error(t, err)
			require.ErrorAs(t, err, &domain.RouterNotConfiguredError{})

			// A direct swap never touches the router and must still build.
			_, _, err = txUsecase.BuildSwapMsg(newDirectQuote(), osmomath.MustNewDecFromStr("0.01"), recipient)
			require.NoError(t, err)
		})
	}
}

func TestBuildSwapMsg_UnknownToken(t *testing.T) {
	quote := newDirectQuote()
	quote.TokenInID = "secret1unknown"

	txUsecase := usecase.NewTxUsecase(routerConfig, gasConfig, tokensusecase.NewTokensUsecase(registry), nil, nil)

	_, _, err := txUsecase.BuildSwapMsg(quote, osmomath.MustNewDecFromStr("0.01"), recipient)
	require.Error(t, err)
	require.ErrorAs(t, err, &domain.TokenNotFoundError{})
}

func TestBuildSwapMsg_EmptyRoute(t *testing.T) {
	txUsecase := usecase.NewTxUsecase(routerConfig, gasConfig, tokensusecase.NewTokensUsecase(registry), nil, nil)

	_, _, err := txUsecase.BuildSwapMsg(&domain.Quote{}, osmomath.MustNewDecFromStr("0.01"), recipient)
	require.Error(t, err)
}

func TestEstimateGasLimit(t *testing.T) {
	testcases := map[string]struct {
		hops     int
		expected uint64
	}{
		"single hop":        {hops: 1, expected: 600_000},
		"two hops":          {hops: 2, expected: 950_000},
		"capped at ceiling": {hops: 10, expected: 3_000_000},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.expected, usecase.EstimateGasLimit(gasConfig, tc.hops))
		})
	}
}

func TestToBaseUnits(t *testing.T) {
	testcases := map[string]struct {
		amount   string
		decimals int32
		expected string
	}{
		"whole units":        {amount: "1", decimals: 6, expected: "1000000"},
		"fractional":         {amount: "0.1", decimals: 6, expected: "100000"},
		"floors dust":        {amount: "0.9999999", decimals: 6, expected: "999999"},
		"zero decimals":      {amount: "1.5", decimals: 0, expected: "1"},
		"negative clamps":    {amount: "-1", decimals: 6, expected: "0"},
		"sub base unit dust": {amount: "0.0000001", decimals: 6, expected: "0"},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			result := usecase.ToBaseUnits(osmomath.MustNewBigDecFromStr(tc.amount), tc.decimals)
			require.Equal(t, tc.expected, result.String())
		})
	}
}

func TestExecuteSwap(t *testing.T) {
	submitter := &mocks.TxSubmitterMock{
		SubmitTxFunc: func(ctx context.Context, msg domain.ExecuteMsg, gasLimit uint64) (domain.TxResult, error) {
			return domain.TxResult{Code: 0, TxHash: "ABC123"}, nil
		},
	}

	txUsecase := usecase.NewTxUsecase(routerConfig, gasConfig, tokensusecase.NewTokensUsecase(registry), submitter, nil)

	result, err := txUsecase.ExecuteSwap(context.Background(), domain.ExecuteMsg{}, 650_000)
	require.NoError(t, err)
	require.Equal(t, "ABC123", result.TxHash)

	require.Len(t, submitter.SubmittedMsgs, 1)
	require.Equal(t, []uint64{650_000}, submitter.SubmittedGasLimits)
}

func TestExecuteSwap_ChainFailure(t *testing.T) {
	submitter := &mocks.TxSubmitterMock{
		SubmitTxFunc: func(ctx context.Context, msg domain.ExecuteMsg, gasLimit uint64) (domain.TxResult, error) {
			return domain.TxResult{Code: 5, RawLog: "insufficient funds"}, nil
		},
	}

	txUsecase := usecase.NewTxUsecase(routerConfig, gasConfig, tokensusecase.NewTokensUsecase(registry), submitter, nil)

	_, err := txUsecase.ExecuteSwap(context.Background(), domain.ExecuteMsg{}, 650_000)
	require.Error(t, err)

	var txErr domain.TxFailedError
	require.ErrorAs(t, err, &txErr)
	require.Equal(t, uint32(5), txErr.Code)
	require.Equal(t, "insufficient funds", txErr.RawLog)

	// Failed submissions are never retried.
	require.Len(t, submitter.SubmittedMsgs, 1)
}
