package store

import "github.com/pkg/errors"

// Domain errors returned by the store. Handlers map them onto HTTP statuses
// with errors.Is, anything else is treated as an internal failure.
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// A comment that exists but belongs to someone else is reported the same
	// way as a missing one.
	ErrCommentNotFound     = errors.New("comment not found or unauthorized")
	ErrRestaurantHasOrders = errors.New("cannot delete restaurant with existing orders, delete orders first")
	ErrInvalidInput        = errors.New("invalid input")
)

// InputError carries a caller-facing validation message and matches
// ErrInvalidInput under errors.Is.
type InputError struct {
	msg string
}

func (e *InputError) Error() string {
	return e.msg
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(msg string) error {
	return &InputError{msg: msg}
}
