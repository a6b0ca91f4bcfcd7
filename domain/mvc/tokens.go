package mvc

import (
	"github.com/secretswap/router/domain"
)

// TokensUsecase represent the token registry's usecases
type TokensUsecase interface {
	// GetToken returns the registry entry for the given asset ID.
	// Returns domain.TokenNotFoundError rather than defaulting.
	GetToken(id string) (domain.Token, error)

	// GetDecimals returns the display precision for the given asset ID.
	GetDecimals(id string) (int32, error)
}
