package mocks

import (
	"context"

	"github.com/secretswap/router/domain"
)

var _ domain.ContractQuerier = &ContractQuerierMock{}

type ContractQuerierMock struct {
	QuerySmartContractFunc func(ctx context.Context, contractAddr, codeHash string, req, resp any) error
}

func (m *ContractQuerierMock) QuerySmartContract(ctx context.Context, contractAddr, codeHash string, req, resp any) error {
	if m.QuerySmartContractFunc != nil {
		return m.QuerySmartContractFunc(ctx, contractAddr, codeHash, req, resp)
	}
	panic("unimplemented")
}
