package shell

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errNotANumber = errors.New("enter a number, like 12.50")

// ParseAmount parses a non-negative decimal from prompt input.
// Negative, non-numeric, and non-finite values are rejected so the form
// re-prompts instead of the program failing later.
func ParseAmount(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, errNotANumber
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotANumber
	}
	if v < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return v, nil
}

// ValidateAmount adapts ParseAmount to a huh field validator.
func ValidateAmount(input string) error {
	_, err := ParseAmount(input)
	return err
}

// ValidateAmountOrBlank accepts blank input (meaning "use the default")
// and otherwise applies ValidateAmount.
func ValidateAmountOrBlank(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	return ValidateAmount(input)
}
