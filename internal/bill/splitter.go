package bill

// Splitter accumulates the items and diners for one bill and computes the
// final per-diner totals. The service charge percentage is fixed at
// construction. There is no phase guard: items and diners may be added
// after Totals has been called, which simply changes subsequent results.
type Splitter struct {
	servicePct float64
	items      []Item
	diners     []*Diner

	// assigned maps item ID -> diner ID. A personal item belongs to at
	// most one diner; re-assignment is rejected.
	assigned map[string]string
}

// NewSplitter constructs a splitter with the given service charge percentage.
func NewSplitter(servicePct float64) *Splitter {
	return &Splitter{
		servicePct: servicePct,
		assigned:   make(map[string]string),
	}
}

// ServicePercent returns the bill-wide service charge percentage.
func (s *Splitter) ServicePercent() float64 { return s.servicePct }

// AddItem appends an item to the bill's master list.
func (s *Splitter) AddItem(it Item) {
	s.items = append(s.items, it)
}

// AddDiner appends a diner to the bill.
func (s *Splitter) AddDiner(d *Diner) {
	s.diners = append(s.diners, d)
}

// Items returns a copy of the master item list in add order.
func (s *Splitter) Items() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Diners returns the diners in add order.
func (s *Splitter) Diners() []*Diner {
	diners := make([]*Diner, len(s.diners))
	copy(diners, s.diners)
	return diners
}

// SharedItems returns the items whose cost is pooled across all diners.
func (s *Splitter) SharedItems() []Item {
	var shared []Item
	for _, it := range s.items {
		if it.Shared() {
			shared = append(shared, it)
		}
	}
	return shared
}

// Unassigned returns the personal items that no diner owns yet, in add
// order. The interactive assignment loop drains this list.
func (s *Splitter) Unassigned() []Item {
	var pending []Item
	for _, it := range s.items {
		if it.Shared() {
			continue
		}
		if _, ok := s.assigned[it.ID()]; !ok {
			pending = append(pending, it)
		}
	}
	return pending
}

// FindItem returns the first item whose name matches, or ErrNotFound.
// Names are not unique; callers wanting a stable handle should use IDs.
func (s *Splitter) FindItem(name string) (Item, error) {
	for _, it := range s.items {
		if it.Name() == name {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

// FindDiner returns the first diner whose name matches, or ErrNotFound.
func (s *Splitter) FindDiner(name string) (*Diner, error) {
	for _, d := range s.diners {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Splitter) itemByID(id string) (Item, bool) {
	for _, it := range s.items {
		if it.ID() == id {
			return it, true
		}
	}
	return Item{}, false
}

func (s *Splitter) dinerByID(id string) (*Diner, bool) {
	for _, d := range s.diners {
		if d.ID() == id {
			return d, true
		}
	}
	return nil, false
}

// Assign attributes a personal item to a diner, both looked up by ID.
// Assigning a shared item is a deliberate no-op: shared cost is pooled,
// never attributed to an individual. Assigning an item that already
// belongs to a diner fails with ErrAlreadyAssigned. Either the assignment
// fully applies or the splitter is left unchanged.
func (s *Splitter) Assign(itemID, dinerID string) error {
	it, ok := s.itemByID(itemID)
	if !ok {
		return ErrNotFound
	}
	d, ok := s.dinerByID(dinerID)
	if !ok {
		return ErrNotFound
	}
	if it.Shared() {
		return nil
	}
	if _, taken := s.assigned[it.ID()]; taken {
		return ErrAlreadyAssigned
	}
	s.assigned[it.ID()] = d.ID()
	d.addPersonal(it)
	return nil
}

// DinerTotal is one diner's computed share, keyed by diner ID with the
// display name carried along for presentation.
type DinerTotal struct {
	DinerID    string
	Name       string
	TipPercent float64
	Breakdown
}

// Totals computes every diner's share of the bill. The shared pool is the
// sum of all shared item prices, split equally across the diner count.
// Results are returned in diner add order; with zero diners the call
// fails with ErrNoDiners. Totals is a pure read: calling it twice without
// mutation in between yields identical results.
func (s *Splitter) Totals() ([]DinerTotal, error) {
	if len(s.diners) == 0 {
		return nil, ErrNoDiners
	}

	var sharedCost float64
	for _, it := range s.items {
		if it.Shared() {
			sharedCost += it.Price()
		}
	}

	totals := make([]DinerTotal, 0, len(s.diners))
	for _, d := range s.diners {
		b, err := d.CalculateTotal(sharedCost, s.servicePct, len(s.diners))
		if err != nil {
			return nil, err
		}
		totals = append(totals, DinerTotal{
			DinerID:    d.ID(),
			Name:       d.Name(),
			TipPercent: d.TipPercent(),
			Breakdown:  b,
		})
	}
	return totals, nil
}
