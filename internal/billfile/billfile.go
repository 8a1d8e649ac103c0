// Package billfile decodes a bill from a TOML file into the engine's
// types, for non-interactive use. The file carries plain data only; all
// allocation rules live in the bill package.
package billfile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tabsplit/tabsplit/internal/bill"
)

// File is the on-disk shape of a bill.
type File struct {
	ServicePercent float64 `toml:"service_percent"`
	Items          []Item  `toml:"items"`
	Diners         []Diner `toml:"diners"`
}

// Item is one menu item entry.
type Item struct {
	Name   string  `toml:"name"`
	Price  float64 `toml:"price"`
	Shared bool    `toml:"shared"`
}

// Diner is one participant entry. Items lists the names of the personal
// items this diner takes; each name claims the first matching unassigned
// item on the bill.
type Diner struct {
	Name       string   `toml:"name"`
	TipPercent float64  `toml:"tip_percent"`
	Items      []string `toml:"items"`
}

// Load reads and decodes a bill file.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("reading bill file: %w", err)
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parsing bill file: %w", err)
	}
	return f, nil
}

// Build constructs a fully-assigned splitter from a decoded file.
// Construction and assignment errors carry the offending name.
func Build(f File) (*bill.Splitter, error) {
	s := bill.NewSplitter(f.ServicePercent)

	for _, it := range f.Items {
		item, err := bill.NewItem(it.Name, it.Price, it.Shared)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", it.Name, err)
		}
		s.AddItem(item)
	}

	for _, d := range f.Diners {
		diner := bill.NewDiner(d.Name, d.TipPercent)
		s.AddDiner(diner)

		for _, itemName := range d.Items {
			item, err := claimUnassigned(s, itemName)
			if err != nil {
				return nil, fmt.Errorf("diner %q takes %q: %w", d.Name, itemName, err)
			}
			if err := s.Assign(item.ID(), diner.ID()); err != nil {
				return nil, fmt.Errorf("diner %q takes %q: %w", d.Name, itemName, err)
			}
		}
	}

	return s, nil
}

// claimUnassigned finds the first unassigned personal item with the given
// name, so a bill listing "Soda" twice can hand one to each of two diners.
func claimUnassigned(s *bill.Splitter, name string) (bill.Item, error) {
	for _, it := range s.Unassigned() {
		if it.Name() == name {
			return it, nil
		}
	}
	return bill.Item{}, bill.ErrNotFound
}
