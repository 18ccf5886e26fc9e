package fintrack

import "errors"

// Sentinel errors returned by the domain operations. Callers match them
// with errors.Is; the wrapping message carries the specifics.
var (
	ErrDuplicateName      = errors.New("name already exists")
	ErrNotFound           = errors.New("not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrEmptyList          = errors.New("empty list")
)
