// Package cart holds the in-progress checkout basket for one cashier
// session. It is pure data manipulation: no I/O, every operation returns a
// new cart and line totals are always derived from their inputs.
package cart

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"warung-pos/internal/domain"
)

// BaseKind tags what a line's base item is.
type BaseKind string

const (
	BaseProduct BaseKind = "product"
	BaseTopping BaseKind = "topping"
)

// BaseItem is the tagged variant for a line's underlying catalog entity: a
// full product, or a topping sold standalone.
type BaseItem struct {
	Kind       BaseKind
	ID         string
	Name       string
	PriceCents int64
}

// ProductBase wraps a catalog product as a cart base item, snapshotting its
// current price.
func ProductBase(p domain.Product) BaseItem {
	return BaseItem{Kind: BaseProduct, ID: p.ID, Name: p.Name, PriceCents: p.PriceCents}
}

// ToppingBase wraps a standalone topping as its own sellable base item.
func ToppingBase(t domain.Topping) BaseItem {
	return BaseItem{Kind: BaseTopping, ID: t.ID, Name: t.Name, PriceCents: t.PriceCents}
}

// AddOn is a topping attached to a line, with its price snapshotted at the
// time it was chosen.
type AddOn struct {
	ToppingID  string
	Name       string
	PriceCents int64
}

// Line is one basket row. AddOns and Note are fixed once the line exists;
// choosing a different combination creates a distinct line.
type Line struct {
	ID       string
	Base     BaseItem
	Quantity int
	AddOns   []AddOn
	Note     string
}

// UnitPriceCents is the price of one unit including its add-ons.
func (l Line) UnitPriceCents() int64 {
	total := l.Base.PriceCents
	for _, a := range l.AddOns {
		total += a.PriceCents
	}
	return total
}

// TotalCents is the line's contribution to the cart total, recomputed from
// its inputs on every call.
func (l Line) TotalCents() int64 {
	return l.UnitPriceCents() * int64(l.Quantity)
}

// Cart is an ordered sequence of lines. Order is display order only.
type Cart []Line

// mergeKey identifies lines that should collapse into one: same base item,
// same add-on set and same note.
func mergeKey(base BaseItem, addOns []AddOn, note string) string {
	ids := make([]string, 0, len(addOns))
	for _, a := range addOns {
		ids = append(ids, a.ToppingID)
	}
	sort.Strings(ids)
	return string(base.Kind) + "|" + base.ID + "|" + strings.Join(ids, ",") + "|" + note
}

func (l Line) key() string {
	return mergeKey(l.Base, l.AddOns, l.Note)
}

// MergeOrAdd adds one unit of base with the given add-ons and note. If an
// identical line already exists its quantity is incremented; otherwise a new
// line is appended. Add-ons are kept in a stable order by topping id.
func MergeOrAdd(c Cart, base BaseItem, addOns []AddOn, note string) Cart {
	sorted := make([]AddOn, len(addOns))
	copy(sorted, addOns)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ToppingID < sorted[j].ToppingID })

	key := mergeKey(base, sorted, note)
	out := make(Cart, len(c))
	copy(out, c)
	for i, line := range out {
		if line.key() == key {
			out[i].Quantity++
			return out
		}
	}
	return append(out, Line{
		ID:       uuid.NewString(),
		Base:     base,
		Quantity: 1,
		AddOns:   sorted,
		Note:     note,
	})
}

// SetQuantity updates the quantity of the line with the given id. A quantity
// of zero or less removes the line. Unknown ids leave the cart unchanged.
func SetQuantity(c Cart, lineID string, quantity int) Cart {
	out := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ID != lineID {
			out = append(out, line)
			continue
		}
		if quantity <= 0 {
			continue
		}
		line.Quantity = quantity
		out = append(out, line)
	}
	return out
}

// Remove drops the line with the given id.
func Remove(c Cart, lineID string) Cart {
	return SetQuantity(c, lineID, 0)
}

// TotalCents sums all line totals.
func TotalCents(c Cart) int64 {
	var total int64
	for _, line := range c {
		total += line.TotalCents()
	}
	return total
}

// ChangeDueCents is the cash change for a tendered amount, floored at zero.
func ChangeDueCents(totalCents, tenderedCents int64) int64 {
	if d := tenderedCents - totalCents; d > 0 {
		return d
	}
	return 0
}
