package logic

import "fmt"

type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusFailedPrecondition
)

// Error message constants for the cart domain.
const (
	ErrMsgProductIDRequired = "Product ID is required"
	ErrMsgQuantityPositive  = "Quantity must be positive"
	ErrMsgQuantityTooLarge  = "Quantity exceeds the per-item limit"
	ErrMsgPriceNegative     = "Price cannot be negative"
	ErrMsgDuplicateItem     = "Duplicate item in cart"
	ErrMsgCartEmpty         = "Cart is empty"
	ErrMsgCustomerRequired  = "Customer name is required"
	ErrMsgEmailRequired     = "Customer email is required"
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusFailedPrecondition:
		return "FAILED_PRECONDITION"
	default:
		return "UNKNOWN"
	}
}

// CommandError is returned when a cart command is rejected before it reaches the reducer.
type CommandError struct {
	Code    StatusCode
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

func NewInvalidArgument(message string) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: message}
}

func NewInvalidArgumentf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func NewFailedPrecondition(message string) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: message}
}
