package usecase

import "fmt"

// ViewingKeyError is returned when the pair contract rejects the query
// with a viewing-key error instead of a reserve pair.
type ViewingKeyError struct {
	PairAddress string
	Msg         string
}

func (e ViewingKeyError) Error() string {
	return fmt.Sprintf("pair (%s) rejected query with viewing key error: %s", e.PairAddress, e.Msg)
}

// UnknownResponseError is returned when a pair query response matches
// neither a valid reserve pair nor a viewing-key error.
type UnknownResponseError struct {
	PairAddress string
}

func (e UnknownResponseError) Error() string {
	return fmt.Sprintf("pair (%s) returned a response of unknown shape", e.PairAddress)
}

// InvalidAmountError is returned when a reserve amount string is not an
// integer.
type InvalidAmountError struct {
	PairAddress string
	Amount      string
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("pair (%s) returned a non-integer reserve amount %q", e.PairAddress, e.Amount)
}
