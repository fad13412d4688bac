package cart

import (
	"testing"

	"warung-pos/internal/domain"
)

var (
	kopi   = domain.Product{ID: "p-kopi", Name: "Kopi Susu", PriceCents: 18000}
	esTeh  = domain.Product{ID: "p-esteh", Name: "Es Teh", PriceCents: 5000}
	boba   = domain.Topping{ID: "t-boba", Name: "Boba", PriceCents: 3000}
	keju   = domain.Topping{ID: "t-keju", Name: "Keju", PriceCents: 4000}
	cincau = domain.Topping{ID: "t-cincau", Name: "Cincau", PriceCents: 2000}
)

func addOn(t domain.Topping) AddOn {
	return AddOn{ToppingID: t.ID, Name: t.Name, PriceCents: t.PriceCents}
}

func TestMergeOrAddMergesIdenticalLines(t *testing.T) {
	c := MergeOrAdd(nil, ProductBase(kopi), []AddOn{addOn(boba)}, "less ice")
	c = MergeOrAdd(c, ProductBase(kopi), []AddOn{addOn(boba)}, "less ice")

	if len(c) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c))
	}
	if c[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", c[0].Quantity)
	}
}

func TestMergeOrAddAddOnOrderDoesNotMatter(t *testing.T) {
	c := MergeOrAdd(nil, ProductBase(kopi), []AddOn{addOn(boba), addOn(keju)}, "")
	c = MergeOrAdd(c, ProductBase(kopi), []AddOn{addOn(keju), addOn(boba)}, "")

	if len(c) != 1 {
		t.Fatalf("expected add-on order to be ignored, got %d lines", len(c))
	}
	if c[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", c[0].Quantity)
	}
}

func TestMergeOrAddDistinctCombinationsStaySeparate(t *testing.T) {
	tests := []struct {
		name   string
		addOns []AddOn
		note   string
	}{
		{"different add-ons", []AddOn{addOn(keju)}, ""},
		{"subset of add-ons", nil, ""},
		{"different note", []AddOn{addOn(boba)}, "takeaway"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := MergeOrAdd(nil, ProductBase(kopi), []AddOn{addOn(boba)}, "")
			c = MergeOrAdd(c, ProductBase(kopi), tc.addOns, tc.note)
			if len(c) != 2 {
				t.Fatalf("expected 2 separate lines, got %d", len(c))
			}
			for _, line := range c {
				if line.Quantity != 1 {
					t.Fatalf("expected each line quantity 1, got %d", line.Quantity)
				}
			}
		})
	}
}

func TestMergeOrAddStandaloneToppingIsItsOwnLine(t *testing.T) {
	c := MergeOrAdd(nil, ProductBase(kopi), nil, "")
	c = MergeOrAdd(c, ToppingBase(boba), nil, "")

	if len(c) != 2 {
		t.Fatalf("expected product and standalone topping lines, got %d", len(c))
	}
	if c[1].Base.Kind != BaseTopping {
		t.Fatalf("expected second line base kind %q, got %q", BaseTopping, c[1].Base.Kind)
	}
	if got := c[1].TotalCents(); got != boba.PriceCents {
		t.Fatalf("expected standalone topping total %d, got %d", boba.PriceCents, got)
	}
}

func TestMergeOrAddDoesNotMutateInput(t *testing.T) {
	orig := MergeOrAdd(nil, ProductBase(kopi), nil, "")
	_ = MergeOrAdd(orig, ProductBase(kopi), nil, "")

	if orig[0].Quantity != 1 {
		t.Fatalf("input cart was mutated: quantity %d", orig[0].Quantity)
	}
}

func TestLineTotals(t *testing.T) {
	c := MergeOrAdd(nil, ProductBase(kopi), []AddOn{addOn(boba), addOn(cincau)}, "")
	c = MergeOrAdd(c, ProductBase(kopi), []AddOn{addOn(boba), addOn(cincau)}, "")
	c = MergeOrAdd(c, ProductBase(kopi), []AddOn{addOn(boba), addOn(cincau)}, "")

	line := c[0]
	wantUnit := kopi.PriceCents + boba.PriceCents + cincau.PriceCents
	if got := line.UnitPriceCents(); got != wantUnit {
		t.Fatalf("unit price: want %d, got %d", wantUnit, got)
	}
	if got := line.TotalCents(); got != wantUnit*3 {
		t.Fatalf("line total: want %d, got %d", wantUnit*3, got)
	}
}

func TestSetQuantity(t *testing.T) {
	c := MergeOrAdd(nil, ProductBase(kopi), nil, "")
	c = MergeOrAdd(c, ProductBase(esTeh), nil, "")
	id := c[0].ID

	c = SetQuantity(c, id, 5)
	if c[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", c[0].Quantity)
	}

	c = SetQuantity(c, "no-such-line", 9)
	if len(c) != 2 {
		t.Fatalf("unknown id changed the cart: %d lines", len(c))
	}

	c = SetQuantity(c, id, 0)
	if len(c) != 1 {
		t.Fatalf("expected zero quantity to remove the line, got %d lines", len(c))
	}
	if c[0].Base.ID != esTeh.ID {
		t.Fatalf("wrong line removed, remaining base %s", c[0].Base.ID)
	}
}

func TestRemove(t *testing.T) {
	c := MergeOrAdd(nil, ProductBase(kopi), nil, "")
	c = Remove(c, c[0].ID)
	if len(c) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(c))
	}
}

func TestTotalCents(t *testing.T) {
	c := MergeOrAdd(nil, ProductBase(kopi), []AddOn{addOn(boba)}, "")
	c = MergeOrAdd(c, ProductBase(kopi), []AddOn{addOn(boba)}, "")
	c = MergeOrAdd(c, ProductBase(esTeh), nil, "")
	c = MergeOrAdd(c, ToppingBase(keju), nil, "")

	want := 2*(kopi.PriceCents+boba.PriceCents) + esTeh.PriceCents + keju.PriceCents
	if got := TotalCents(c); got != want {
		t.Fatalf("cart total: want %d, got %d", want, got)
	}

	if got := TotalCents(nil); got != 0 {
		t.Fatalf("empty cart total: want 0, got %d", got)
	}
}

func TestChangeDueCents(t *testing.T) {
	tests := []struct {
		name            string
		total, tendered int64
		want            int64
	}{
		{"exact", 5000, 5000, 0},
		{"overpaid", 5000, 10000, 5000},
		{"underpaid floors at zero", 5000, 4000, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ChangeDueCents(tc.total, tc.tendered); got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}
