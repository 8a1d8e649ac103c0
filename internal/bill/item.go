// Package bill implements the bill-splitting engine: menu items, diners,
// and the splitter that allocates shared and personal costs across a group.
//
// The engine is pure and in-memory. It never logs and never swallows
// errors; the CLI layers above decide how failures are surfaced. A
// Splitter instance belongs to a single bill and must not be shared
// across goroutines.
package bill

import "github.com/google/uuid"

// Item is a priced menu item, flagged as shared or personal.
// Items are immutable after construction. Each item carries a generated
// identifier; the display name is not unique and is used only for
// presentation and input matching.
type Item struct {
	id     string
	name   string
	price  float64
	shared bool
}

// NewItem constructs an item. A negative price fails with ErrInvalidPrice;
// everything else is accepted, including empty and duplicate names.
func NewItem(name string, price float64, shared bool) (Item, error) {
	if price < 0 {
		return Item{}, ErrInvalidPrice
	}
	return Item{
		id:     uuid.NewString(),
		name:   name,
		price:  price,
		shared: shared,
	}, nil
}

// ID returns the item's generated unique identifier.
func (i Item) ID() string { return i.id }

// Name returns the item's display name.
func (i Item) Name() string { return i.name }

// Price returns the item's price.
func (i Item) Price() float64 { return i.price }

// Shared reports whether the item's cost is pooled across all diners.
func (i Item) Shared() bool { return i.shared }
