package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoRoute is returned when no candidate path completes simulation.
	ErrNoRoute = errors.New("no route found between the given tokens")
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
)

// GetStatusCode returns the HTTP status code for the given error.
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, ErrNoRoute):
		return http.StatusNotFound
	case errors.Is(err, ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// PoolNotFoundError is returned when a path references a pool absent
// from the supplied snapshot set.
type PoolNotFoundError struct {
	PoolAddress string
}

func (e PoolNotFoundError) Error() string {
	return fmt.Sprintf("pool (%s) is not found", e.PoolAddress)
}

// PoolMalformedError is returned for structurally broken snapshots.
type PoolMalformedError struct {
	PoolAddress string
	Reason      string
}

func (e PoolMalformedError) Error() string {
	return fmt.Sprintf("pool (%s) snapshot is malformed: %s", e.PoolAddress, e.Reason)
}

// AssetNotInPoolError is returned when a pool does not hold the asset
// a hop expects.
type AssetNotInPoolError struct {
	PoolAddress string
	AssetID     string
}

func (e AssetNotInPoolError) Error() string {
	return fmt.Sprintf("pool (%s) does not hold asset (%s)", e.PoolAddress, e.AssetID)
}

// TokenNotFoundError is returned when a token is absent from the registry.
type TokenNotFoundError struct {
	Address string
}

func (e TokenNotFoundError) Error() string {
	return fmt.Sprintf("token (%s) is not registered", e.Address)
}

// ZeroReserveError marks a degenerate pool: a swap may not be simulated
// against a zero reserve on either side.
type ZeroReserveError struct {
	PoolAddress string
	AssetID     string
}

func (e ZeroReserveError) Error() string {
	return fmt.Sprintf("pool (%s) has a zero reserve for asset (%s)", e.PoolAddress, e.AssetID)
}

// InfeasibleSwapError marks a hop whose simulated output is negative or
// not a number. The path using it is discarded, not the whole estimation.
type InfeasibleSwapError struct {
	PoolAddress string
	TokenInID   string
	TokenOutID  string
}

func (e InfeasibleSwapError) Error() string {
	return fmt.Sprintf("infeasible swap of (%s) for (%s) in pool (%s)", e.TokenInID, e.TokenOutID, e.PoolAddress)
}

// RouterNotConfiguredError is a configuration error: the router contract
// address or code hash is unset or a placeholder. Fatal; no execution
// may be attempted.
type RouterNotConfiguredError struct {
	Field string
}

func (e RouterNotConfiguredError) Error() string {
	return fmt.Sprintf("router contract %s is not configured", e.Field)
}

// TxFailedError carries the chain's raw log verbatim for a non-success
// execution result. Never retried.
type TxFailedError struct {
	Code   uint32
	RawLog string
}

func (e TxFailedError) Error() string {
	return fmt.Sprintf("transaction failed with code %d: %s", e.Code, e.RawLog)
}
