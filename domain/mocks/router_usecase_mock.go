package mocks

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/secretswap/router/domain"
	"github.com/secretswap/router/domain/mvc"
)

var _ mvc.RouterUsecase = &RouterUsecaseMock{}

type RouterUsecaseMock struct {
	GetQuoteFunc          func(ctx context.Context, tokenInID, tokenOutID string, amountIn osmomath.BigDec) (*domain.Quote, error)
	GetCandidatePathsFunc func(ctx context.Context, tokenInID, tokenOutID string) (domain.CandidatePaths, error)
}

func (m *RouterUsecaseMock) GetQuote(ctx context.Context, tokenInID, tokenOutID string, amountIn osmomath.BigDec) (*domain.Quote, error) {
	if m.GetQuoteFunc != nil {
		return m.GetQuoteFunc(ctx, tokenInID, tokenOutID, amountIn)
	}
	panic("unimplemented")
}

func (m *RouterUsecaseMock) GetCandidatePaths(ctx context.Context, tokenInID, tokenOutID string) (domain.CandidatePaths, error) {
	if m.GetCandidatePathsFunc != nil {
		return m.GetCandidatePathsFunc(ctx, tokenInID, tokenOutID)
	}
	panic("unimplemented")
}
