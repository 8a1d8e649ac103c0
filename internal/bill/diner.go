package bill

import "github.com/google/uuid"

// Diner is one participant on a bill. A diner owns an append-only list of
// personal items and a tip percentage applied to its own subtotal. Tip
// rates above 100% are unusual but valid; no upper bound is enforced.
type Diner struct {
	id         string
	name       string
	tipPercent float64
	personal   []Item
}

// NewDiner constructs a diner with a generated identifier.
func NewDiner(name string, tipPercent float64) *Diner {
	return &Diner{
		id:         uuid.NewString(),
		name:       name,
		tipPercent: tipPercent,
	}
}

// ID returns the diner's generated unique identifier.
func (d *Diner) ID() string { return d.id }

// Name returns the diner's display name.
func (d *Diner) Name() string { return d.name }

// TipPercent returns the diner's tip percentage.
func (d *Diner) TipPercent() float64 { return d.tipPercent }

// PersonalItems returns a copy of the diner's personal item list in
// assignment order.
func (d *Diner) PersonalItems() []Item {
	items := make([]Item, len(d.personal))
	copy(items, d.personal)
	return items
}

// addPersonal appends an item to the diner's personal list.
// Only the Splitter's assignment path calls this.
func (d *Diner) addPersonal(it Item) {
	d.personal = append(d.personal, it)
}

// Breakdown holds one diner's computed share of a bill.
type Breakdown struct {
	PersonalTotal float64 // sum of this diner's personal item prices
	SharedShare   float64 // equal slice of the pooled shared-item cost
	Subtotal      float64 // personal total + shared share
	ServiceCharge float64 // subtotal * service charge percent
	Tip           float64 // subtotal * this diner's tip percent
	Total         float64 // subtotal + service charge + tip
}

// CalculateTotal computes this diner's total given the pooled shared cost,
// the bill-wide service charge percentage, and the number of diners
// splitting the shared pool. The shared cost is divided equally regardless
// of how many shared items contributed to it. A zero diner count fails
// with ErrNoDiners rather than producing Inf or NaN.
//
// The computation is pure: it reads but never mutates the diner.
func (d *Diner) CalculateTotal(sharedCost, servicePct float64, dinerCount int) (Breakdown, error) {
	if dinerCount == 0 {
		return Breakdown{}, ErrNoDiners
	}

	var b Breakdown
	for _, it := range d.personal {
		b.PersonalTotal += it.Price()
	}
	b.SharedShare = sharedCost / float64(dinerCount)
	b.Subtotal = b.PersonalTotal + b.SharedShare
	b.ServiceCharge = b.Subtotal * servicePct / 100
	b.Tip = b.Subtotal * d.tipPercent / 100
	b.Total = b.Subtotal + b.ServiceCharge + b.Tip
	return b, nil
}
