package usecase

import (
	"github.com/secretswap/router/domain"
	"github.com/secretswap/router/domain/mvc"
)

type tokensUseCase struct {
	tokens map[string]domain.Token
}

var _ mvc.TokensUsecase = &tokensUseCase{}

// NewTokensUsecase builds the in-memory token registry from the given
// reference data.
func NewTokensUsecase(tokens []domain.Token) mvc.TokensUsecase {
	byAddress := make(map[string]domain.Token, len(tokens))
	for _, token := range tokens {
		byAddress[token.Address] = token
	}

	return &tokensUseCase{
		tokens: byAddress,
	}
}

// GetToken implements mvc.TokensUsecase.
func (t *tokensUseCase) GetToken(id string) (domain.Token, error) {
	token, ok := t.tokens[id]
	if !ok {
		return domain.Token{}, domain.TokenNotFoundError{Address: id}
	}
	return token, nil
}

// GetDecimals implements mvc.TokensUsecase.
func (t *tokensUseCase) GetDecimals(id string) (int32, error) {
	token, err := t.GetToken(id)
	if err != nil {
		return 0, err
	}
	return token.Decimals, nil
}
