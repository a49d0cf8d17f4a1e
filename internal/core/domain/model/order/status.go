package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Placed ──> Delivered
//
// Delivered is final. Assignment does not change the status.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Placed is the status of every order right after conversion from a cart.
	Placed

	// Delivered indicates the delivery crew confirmed the hand-over.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Placed:    "Placed",
		Delivered: "Delivered",
	}
}

func getStatusCodes() map[Status]string {
	//nolint:exhaustive // Unknown has no persisted form
	return map[Status]string{
		Placed:    "placed",
		Delivered: "delivered",
	}
}

// ParseStatus maps a persisted status code ("placed", "delivered") back to a Status.
func ParseStatus(code string) (Status, error) {
	for s, c := range getStatusCodes() {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status code", code))
}

// Validate accepts Placed and Delivered only.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Code is the lower-case form used for persistence and transport.
func (s Status) Code() string {
	return getStatusCodes()[s]
}

// String returns the human-readable name of the status; "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Placed -> Delivered
//
// Delivered -> Delivered returns ErrAlreadyDelivered so callers can report it
// as a warning. Any other source status is invalid.
func (s Status) Deliver() (Status, error) {
	switch s {
	case Placed:
		return Delivered, nil
	case Delivered:
		return Delivered, ErrAlreadyDelivered
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
}
