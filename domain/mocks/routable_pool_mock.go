package mocks

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/secretswap/router/domain"
)

var _ domain.RoutablePool = &RoutablePoolMock{}

type RoutablePoolMock struct {
	CalculateTokenOutByTokenInFunc func(amountIn osmomath.BigDec) (domain.SwapEstimate, error)

	Address    string
	CodeHash   string
	TokenInID  string
	TokenOutID string
	Fee        osmomath.Dec
}

func (m *RoutablePoolMock) CalculateTokenOutByTokenIn(amountIn osmomath.BigDec) (domain.SwapEstimate, error) {
	if m.CalculateTokenOutByTokenInFunc != nil {
		return m.CalculateTokenOutByTokenInFunc(amountIn)
	}
	panic("unimplemented")
}

func (m *RoutablePoolMock) GetAddress() string {
	return m.Address
}

func (m *RoutablePoolMock) GetCodeHash() string {
	return m.CodeHash
}

func (m *RoutablePoolMock) GetTokenInID() string {
	return m.TokenInID
}

func (m *RoutablePoolMock) GetTokenOutID() string {
	return m.TokenOutID
}

func (m *RoutablePoolMock) GetFee() osmomath.Dec {
	return m.Fee
}

func (m *RoutablePoolMock) String() string {
	return "mock pool (" + m.Address + ")"
}
