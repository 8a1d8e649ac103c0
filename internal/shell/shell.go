// Package shell drives the interactive bill entry flow. It collects
// validated values through huh forms and hands them to the bill engine;
// no allocation rules live here.
package shell

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/tabsplit/tabsplit/internal/bill"
	"github.com/tabsplit/tabsplit/internal/store"
)

// Options configures the interactive flow.
type Options struct {
	// DefaultServicePercent pre-fills the service charge prompt.
	DefaultServicePercent float64

	// DefaultTipPercent pre-fills each diner's tip prompt.
	DefaultTipPercent float64

	// Catalog, when non-nil, prefills item prices and diner tip rates
	// from saved entries and records new ones after the bill.
	Catalog *store.Catalog
}

// Run walks through the full entry flow: service charge, items, diners,
// and assignments. The returned splitter is fully populated; computing
// and rendering totals is the caller's job.
func Run(opts Options) (*bill.Splitter, error) {
	servicePct, err := promptServiceCharge(opts.DefaultServicePercent)
	if err != nil {
		return nil, err
	}
	s := bill.NewSplitter(servicePct)

	if err := collectItems(s, opts.Catalog); err != nil {
		return nil, err
	}
	if err := collectDiners(s, opts.DefaultTipPercent, opts.Catalog); err != nil {
		return nil, err
	}
	if err := assignItems(s); err != nil {
		return nil, err
	}
	return s, nil
}

func promptServiceCharge(def float64) (float64, error) {
	input := formatDefault(def)
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Service charge %").
			Description("Percentage added to every diner's subtotal").
			Validate(ValidateAmount).
			Value(&input),
	))
	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("service charge prompt: %w", err)
	}
	return ParseAmount(input)
}

// collectItems loops until a blank item name ends the entry.
func collectItems(s *bill.Splitter, catalog *store.Catalog) error {
	for {
		var name string
		nameForm := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Item %d name", len(s.Items())+1)).
				Description("Leave blank to finish items").
				Value(&name),
		))
		if err := nameForm.Run(); err != nil {
			return fmt.Errorf("item name prompt: %w", err)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil
		}

		priceInput := ""
		shared := false
		if catalog != nil {
			if e, err := catalog.GetMenuEntry(name); err == nil {
				priceInput = formatDefault(e.Price)
				shared = e.Shared
				slog.Debug("prefilled item from catalog", "name", name, "price", e.Price)
			}
		}

		detailForm := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Price").
				Validate(ValidateAmount).
				Value(&priceInput),
			huh.NewConfirm().
				Title("Shared?").
				Description("Shared items are split equally across all diners").
				Value(&shared),
		))
		if err := detailForm.Run(); err != nil {
			return fmt.Errorf("item detail prompt: %w", err)
		}

		price, err := ParseAmount(priceInput)
		if err != nil {
			return err
		}
		item, err := bill.NewItem(name, price, shared)
		if err != nil {
			return err
		}
		s.AddItem(item)

		if catalog != nil {
			if err := catalog.SaveMenuEntry(store.MenuEntry{Name: name, Price: price, Shared: shared}); err != nil {
				slog.Warn("could not save menu entry", "name", name, "error", err)
			}
		}
	}
}

// collectDiners loops until a blank diner name ends the entry.
func collectDiners(s *bill.Splitter, defaultTip float64, catalog *store.Catalog) error {
	for {
		var name string
		nameForm := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Diner %d name", len(s.Diners())+1)).
				Description("Leave blank to finish diners").
				Value(&name),
		))
		if err := nameForm.Run(); err != nil {
			return fmt.Errorf("diner name prompt: %w", err)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil
		}

		tip := defaultTip
		if catalog != nil {
			if r, err := catalog.GetRegular(name); err == nil {
				tip = r.TipPercent
				slog.Debug("prefilled tip from catalog", "name", name, "tip", tip)
			}
		}

		tipInput := formatDefault(tip)
		tipForm := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Tip %% for %s", name)).
				Validate(ValidateAmount).
				Value(&tipInput),
		))
		if err := tipForm.Run(); err != nil {
			return fmt.Errorf("tip prompt: %w", err)
		}
		tip, err := ParseAmount(tipInput)
		if err != nil {
			return err
		}

		s.AddDiner(bill.NewDiner(name, tip))

		if catalog != nil {
			if err := catalog.SaveRegular(store.Regular{Name: name, TipPercent: tip}); err != nil {
				slog.Warn("could not save regular", "name", name, "error", err)
			}
		}
	}
}

// assignItems walks every unassigned personal item and asks which diner
// takes it. Selection is by diner, so lookups cannot miss; if the engine
// still rejects an assignment the error is shown and the item re-asked.
func assignItems(s *bill.Splitter) error {
	pending := s.Unassigned()
	if len(pending) == 0 {
		return nil
	}
	if len(s.Diners()) == 0 {
		// Nothing to assign to; Totals will surface the empty-bill error.
		return nil
	}

	options := make([]huh.Option[string], 0, len(s.Diners()))
	for _, d := range s.Diners() {
		options = append(options, huh.NewOption(d.Name(), d.ID()))
	}

	for _, item := range pending {
		for {
			var dinerID string
			form := huh.NewForm(huh.NewGroup(
				huh.NewSelect[string]().
					Title(fmt.Sprintf("Who had %s (%.2f)?", item.Name(), item.Price())).
					Options(options...).
					Value(&dinerID),
			))
			if err := form.Run(); err != nil {
				return fmt.Errorf("assignment prompt: %w", err)
			}

			err := s.Assign(item.ID(), dinerID)
			if err == nil {
				break
			}
			// Recoverable: show the engine's message and ask again.
			fmt.Printf("  %v\n", err)
		}
	}
	return nil
}

// formatDefault renders a numeric default for an input field, dropping
// trailing zeros so "10" doesn't show as "10.000000".
func formatDefault(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
