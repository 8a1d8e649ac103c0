package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabsplit/tabsplit/internal/bill"
)

func fixtureSplitter(t *testing.T) *bill.Splitter {
	t.Helper()
	s := bill.NewSplitter(10)

	pizza, err := bill.NewItem("Pizza", 20, true)
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	soda, err := bill.NewItem("Soda", 5, false)
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	s.AddItem(pizza)
	s.AddItem(soda)

	alice := bill.NewDiner("Alice", 10)
	bob := bill.NewDiner("Bob", 20)
	s.AddDiner(alice)
	s.AddDiner(bob)

	if err := s.Assign(soda.ID(), alice.ID()); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	return s
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew_NoDiners(t *testing.T) {
	_, err := New(bill.NewSplitter(10))
	if !errors.Is(err, bill.ErrNoDiners) {
		t.Fatalf("New with empty bill = %v, want ErrNoDiners", err)
	}
}

func TestView_ShowsTotalsSortedDescending(t *testing.T) {
	m, err := New(fixtureSplitter(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out := m.View()
	alice := strings.Index(out, "Alice")
	bob := strings.Index(out, "Bob")
	if alice < 0 || bob < 0 {
		t.Fatalf("view missing diners:\n%s", out)
	}
	if alice > bob {
		t.Error("default sort should place Alice ($18.00) before Bob ($13.00)")
	}
	if !strings.Contains(out, "$18.00") || !strings.Contains(out, "$13.00") {
		t.Errorf("view missing totals:\n%s", out)
	}
}

func TestUpdate_CursorAndSortToggle(t *testing.T) {
	m, err := New(fixtureSplitter(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	next, _ := m.Update(keyPress('j'))
	m = next.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor after j = %d, want 1", m.cursor)
	}

	// Cursor clamps at the end of the list.
	next, _ = m.Update(keyPress('j'))
	m = next.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor after second j = %d, want 1", m.cursor)
	}

	// Sort toggle restores entry order and resets the cursor.
	next, _ = m.Update(keyPress('s'))
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor after sort toggle = %d, want 0", m.cursor)
	}
	if m.totals[0].Name != "Alice" {
		t.Errorf("entry order start = %q, want Alice", m.totals[0].Name)
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	m, err := New(fixtureSplitter(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}
