package payment

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Method is the means of payment accepted at the table.
type Method int

const (
	// UnknownMethod represents an invalid or undefined method.
	UnknownMethod Method = iota

	// Cash is payment in cash.
	Cash

	// Card is payment by card.
	Card
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		UnknownMethod: "unknown",
		Cash:          "cash",
		Card:          "card",
	}
}

func getValidMethodStrings() map[Method]string {
	//nolint:exhaustive // UnknownMethod is intentionally excluded as it's invalid
	return map[Method]string{
		Cash: "cash",
		Card: "card",
	}
}

// MethodFromString parses the wire representation of a payment method.
// Anything outside {cash, card} is invalid.
func MethodFromString(s string) (Method, error) {
	for m, str := range getValidMethodStrings() {
		if str == s {
			return m, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("method",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks that the Method value is one of the accepted methods.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire name of the method, "unknown" for invalid values.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
