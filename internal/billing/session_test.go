package billing

import (
	"errors"
	"testing"

	"github.com/Dhyey-19/VaaniBill/internal/catalog"
	"github.com/Dhyey-19/VaaniBill/internal/parser"
)

func testSnapshot() []catalog.Product {
	return []catalog.Product{
		{ID: 1, NameEn: "sugar", NameGu: "ખાંડ", Rate: 50},
		{ID: 2, NameEn: "rice", NameGu: "ચોખા", Rate: 40},
	}
}

func TestSessionAddUtterance(t *testing.T) {
	session := NewSession("user-1", parser.LocaleEnglish, testSnapshot())

	draft, err := session.AddUtterance("two kg sugar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Total != 100 {
		t.Errorf("expected total 100, got %v", draft.Total)
	}

	items := session.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}

func TestSessionAddUtterance_FailureLeavesDraftUntouched(t *testing.T) {
	session := NewSession("user-1", parser.LocaleEnglish, testSnapshot())

	if _, err := session.AddUtterance("two kg gold"); !errors.Is(err, parser.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := session.AddUtterance("   "); !errors.Is(err, parser.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}

	if len(session.Items()) != 0 {
		t.Fatalf("expected no items after failed parses")
	}
}

func TestSessionArrivalOrderPreserved(t *testing.T) {
	session := NewSession("user-1", parser.LocaleEnglish, testSnapshot())

	session.AddUtterance("two kg sugar")
	session.AddUtterance("one kg rice")

	items := session.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "sugar" || items[1].Name != "rice" {
		t.Errorf("expected arrival order sugar,rice; got %q,%q", items[0].Name, items[1].Name)
	}
}

func TestSessionUpdateItemRoundsTotal(t *testing.T) {
	session := NewSession("user-1", parser.LocaleEnglish, testSnapshot())

	draft, err := session.AddUtterance("sugar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	qty := 2.5
	rate := 19.99
	updated, err := session.UpdateItem(draft.ID, ItemPatch{Quantity: &qty, Rate: &rate})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2.5 * 19.99 = 49.975, rounded to 2 decimals on manual edit.
	if updated.Total != 49.98 {
		t.Errorf("expected total 49.98, got %v", updated.Total)
	}
}

func TestSessionUpdateItem_PartialPatch(t *testing.T) {
	session := NewSession("user-1", parser.LocaleEnglish, testSnapshot())

	draft, _ := session.AddUtterance("two kg sugar")

	name := "Brown Sugar"
	updated, err := session.UpdateItem(draft.ID, ItemPatch{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Brown Sugar" {
		t.Errorf("expected renamed item, got %q", updated.Name)
	}
	if updated.Quantity != 2 || updated.Rate != 50 {
		t.Errorf("expected quantity/rate untouched, got %v/%v", updated.Quantity, updated.Rate)
	}
	if updated.Total != 100 {
		t.Errorf("expected total recomputed to 100, got %v", updated.Total)
	}
}

func TestSessionUpdateItem_NotFound(t *testing.T) {
	session := NewSession("user-1", parser.LocaleEnglish, testSnapshot())

	if _, err := session.UpdateItem("missing", ItemPatch{}); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestSessionRemoveItem(t *testing.T) {
	session := NewSession("user-1", parser.LocaleEnglish, testSnapshot())

	first, _ := session.AddUtterance("two kg sugar")
	session.AddUtterance("one kg rice")

	if err := session.RemoveItem(first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := session.Items()
	if len(items) != 1 || items[0].Name != "rice" {
		t.Fatalf("expected only rice to remain, got %+v", items)
	}

	if err := session.RemoveItem(first.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound on second removal, got %v", err)
	}
}

func TestSessionTotal(t *testing.T) {
	session := NewSession("user-1", parser.LocaleEnglish, testSnapshot())

	session.AddUtterance("two kg sugar") // 100
	session.AddUtterance("half kg rice") // 20

	if total := session.Total(); total != 120 {
		t.Errorf("expected total 120, got %v", total)
	}
}

func TestSessionLocaleControlsDisplayName(t *testing.T) {
	session := NewSession("user-1", parser.LocaleGujarati, testSnapshot())

	draft, err := session.AddUtterance("બે કિલો ખાંડ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Name != "ખાંડ" {
		t.Errorf("expected Gujarati display name, got %q", draft.Name)
	}
}
