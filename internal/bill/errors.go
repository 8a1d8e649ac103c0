package bill

import "errors"

// Sentinel errors returned by the engine. Callers are expected to match
// with errors.Is and decide whether to re-prompt (the interactive shell)
// or abort (batch mode).
var (
	// ErrInvalidPrice is returned when constructing an item with a negative price.
	ErrInvalidPrice = errors.New("item price must be non-negative")

	// ErrNotFound is returned when an item or diner lookup fails.
	ErrNotFound = errors.New("no item or diner with that identifier")

	// ErrNoDiners is returned when totals are requested with zero diners.
	// Shared-cost allocation requires at least one participant.
	ErrNoDiners = errors.New("cannot split a bill among zero diners")

	// ErrAlreadyAssigned is returned when a personal item that already
	// belongs to a diner is assigned again.
	ErrAlreadyAssigned = errors.New("item is already assigned to a diner")
)
