package domain

import (
	"context"
	"encoding/json"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// ContractQuerier is the read-only boundary to the chain: a single-shot
// smart-contract query with no engine-level retry.
type ContractQuerier interface {
	// QuerySmartContract marshals req, queries the contract, and
	// unmarshals the raw response bytes into resp.
	QuerySmartContract(ctx context.Context, contractAddr, codeHash string, req, resp any) error
}

// NativeCoin is a native amount attached to an execute message.
type NativeCoin struct {
	Denom  string       `json:"denom"`
	Amount osmomath.Int `json:"amount"`
}

// ExecuteMsg is a fully built, protocol-ready contract execution.
type ExecuteMsg struct {
	ContractAddr string          `json:"contract_addr"`
	CodeHash     string          `json:"code_hash"`
	Msg          json.RawMessage `json:"msg"`
	// SentFunds is non-empty only when the origin asset is native.
	SentFunds []NativeCoin `json:"sent_funds,omitempty"`
}

// TxResult is the settled outcome of a submitted transaction.
type TxResult struct {
	Code   uint32 `json:"code"`
	TxHash string `json:"txhash"`
	// RawLog is the chain's log, reported verbatim on failure.
	RawLog string `json:"raw_log"`
}

// IsSuccess returns true for a zero status code.
func (r TxResult) IsSuccess() bool {
	return r.Code == 0
}

// TxSubmitter signs and broadcasts an execute message. Owned by the
// wallet layer; submission is fire-and-forget and never retried here.
type TxSubmitter interface {
	SubmitTx(ctx context.Context, msg ExecuteMsg, gasLimit uint64) (TxResult, error)
}
