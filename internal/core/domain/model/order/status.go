package order

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Status represents the delivery progress of an order. It is derived from
// the delivery counts of the order's lines and is recomputed after every
// line mutation:
//
//	delivered   := every line has delivered_count >= quantity
//	in_progress := not delivered, and some line has delivered_count > 0
//	pending     := every line has delivered_count == 0
//
// The only way a status is assigned independently of the lines is the
// explicit set-status operation exposed to staff displays.
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending means no line has had any unit delivered yet.
	Pending

	// InProgress means at least one unit was delivered but some line is
	// still short of its ordered quantity.
	InProgress

	// Delivered means every line is fully delivered. Only orders in this
	// status may be charged.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Delivered:  "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Delivered:  "delivered",
	}
}

// StatusFromString parses the wire representation of a status. Returns an
// error for anything outside {pending, in_progress, delivered}.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// deriveStatus computes the aggregate status from the order's lines.
// An order without lines is pending.
func deriveStatus(lines []*Line) Status {
	allDelivered := len(lines) > 0
	anyDelivered := false

	for _, l := range lines {
		if !l.IsDelivered() {
			allDelivered = false
		}
		if l.DeliveredCount() > 0 {
			anyDelivered = true
		}
	}

	switch {
	case allDelivered:
		return Delivered
	case anyDelivered:
		return InProgress
	default:
		return Pending
	}
}
