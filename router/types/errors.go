package types

import "errors"

// Handler Errors
var (
	ErrTokenInNotSpecified  = errors.New("tokenIn is required")
	ErrTokenOutNotSpecified = errors.New("tokenOut is required")
	ErrAmountInNotValid     = errors.New("amountIn is invalid - must be a positive decimal number")
	ErrSameToken            = errors.New("tokenIn and tokenOut must differ")
)
