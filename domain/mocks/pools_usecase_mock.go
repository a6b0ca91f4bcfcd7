package mocks

import (
	"context"

	"github.com/secretswap/router/domain"
	"github.com/secretswap/router/domain/mvc"
)

var _ mvc.PoolsUsecase = &PoolsUsecaseMock{}

type PoolsUsecaseMock struct {
	GetAllPoolsFunc func(ctx context.Context) ([]domain.Pool, error)

	Pools []domain.Pool
}

func (m *PoolsUsecaseMock) GetAllPools(ctx context.Context) ([]domain.Pool, error) {
	if m.GetAllPoolsFunc != nil {
		return m.GetAllPoolsFunc(ctx)
	}
	return m.Pools, nil
}
