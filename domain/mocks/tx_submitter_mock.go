package mocks

import (
	"context"

	"github.com/secretswap/router/domain"
)

var _ domain.TxSubmitter = &TxSubmitterMock{}

type TxSubmitterMock struct {
	SubmitTxFunc func(ctx context.Context, msg domain.ExecuteMsg, gasLimit uint64) (domain.TxResult, error)

	// SubmittedMsgs records every submission for assertions.
	SubmittedMsgs      []domain.ExecuteMsg
	SubmittedGasLimits []uint64
}

func (m *TxSubmitterMock) SubmitTx(ctx context.Context, msg domain.ExecuteMsg, gasLimit uint64) (domain.TxResult, error) {
	m.SubmittedMsgs = append(m.SubmittedMsgs, msg)
	m.SubmittedGasLimits = append(m.SubmittedGasLimits, gasLimit)
	if m.SubmitTxFunc != nil {
		return m.SubmitTxFunc(ctx, msg, gasLimit)
	}
	panic("unimplemented")
}
