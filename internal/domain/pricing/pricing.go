package pricing

import (
	"math"
	"strconv"
	"strings"

	"primefinish/internal/domain/entities"
)

// TaxRate is the fixed GST/HST rate applied to every record. Hardcoded policy
// constant; not configurable.
const TaxRate = 0.13

// MergeCatalog overlays saved price overrides onto the default catalog.
// Defaults keep their order; a saved entry with a known label overwrites that
// entry's value, an unknown label is appended in saved order. Malformed saved
// data is treated as empty.
func MergeCatalog(defaults, saved []entities.CostOption) []entities.CostOption {
	merged := make([]entities.CostOption, len(defaults))
	copy(merged, defaults)

	for _, s := range saved {
		idx := -1
		for i, opt := range merged {
			if opt.Label == s.Label {
				idx = i
				break
			}
		}
		if idx >= 0 {
			merged[idx].Value = s.Value
		} else {
			merged = append(merged, s)
		}
	}
	return merged
}

// LookupPrice returns the catalog value for a label, or 0 when absent.
func LookupPrice(catalog []entities.CostOption, label string) float64 {
	for _, opt := range catalog {
		if opt.Label == label {
			return opt.Value
		}
	}
	return 0
}

// lockedValue reports a locked price. Zero means "never locked" so that
// records saved before a price was ever selected fall back to their cost.
func lockedValue(p *entities.Amount) (float64, bool) {
	if p == nil || *p == 0 {
		return 0, false
	}
	return p.Float(), true
}

// RoomAmount is the billable amount for one room. A "Square Footage" room is
// billed per square foot at the locked rate, or at the catalog's current rate
// if it was never locked; any other room is billed at its locked price, or at
// its raw cost if never locked.
func RoomAmount(room entities.RoomLineItem, catalog []entities.CostOption) float64 {
	if room.RoomName == entities.SquareFootageLabel {
		rate, ok := lockedValue(room.LockedSquareFootPrice)
		if !ok {
			rate = LookupPrice(catalog, entities.SquareFootageLabel)
		}
		return room.SquareFootage.Float() * rate
	}
	if v, ok := lockedValue(room.LockedPrice); ok {
		return v
	}
	return room.Cost.Float()
}

// ExtraAmount is the billable amount for one extra: locked cost when locked,
// raw cost otherwise.
func ExtraAmount(extra entities.ExtraLineItem) float64 {
	if v, ok := lockedValue(extra.LockedCost); ok {
		return v
	}
	return extra.Cost.Float()
}

// Subtotal sums the billable amounts of all line items. Order-independent.
func Subtotal(rooms []entities.RoomLineItem, extras []entities.ExtraLineItem, catalog []entities.CostOption) float64 {
	sum := 0.0
	for _, room := range rooms {
		sum += RoomAmount(room, catalog)
	}
	for _, extra := range extras {
		sum += ExtraAmount(extra)
	}
	return sum
}

// Tax applies the fixed GST/HST rate, rounded to cents.
func Tax(subtotal float64) float64 {
	return roundCents(subtotal * TaxRate)
}

// Total is subtotal plus tax.
func Total(subtotal, tax float64) float64 {
	return subtotal + tax
}

// Finalize recomputes and stamps the totals on a record from its current line
// items. Called on every save so persisted totals always satisfy
// gstHst = subtotal * 0.13 and total = subtotal + gstHst.
func Finalize(r *entities.Record, catalog []entities.CostOption) {
	sub := Subtotal(r.Rooms, r.Extras, catalog)
	tax := Tax(sub)
	r.Subtotal = entities.Amount(sub)
	r.GstHst = entities.Amount(tax)
	r.Total = entities.Amount(Total(sub, tax))
}

// ApplyRoomField mutates one room field, capturing locked prices at selection
// time so later catalog edits cannot retroactively change the line item:
//   - setting "cost" to a value that matches a catalog entry locks that price;
//   - setting "roomName" to "Square Footage" locks the current per-square-foot
//     catalog rate.
//
// Locks are only (re-)captured here, on explicit mutation; loading a persisted
// record preserves whatever locked values were saved.
func ApplyRoomField(room *entities.RoomLineItem, field, value string, catalog []entities.CostOption) {
	switch field {
	case "roomName":
		if value == entities.SquareFootageLabel {
			rate := entities.Amount(LookupPrice(catalog, entities.SquareFootageLabel))
			room.LockedSquareFootPrice = &rate
		}
		room.RoomName = value
	case "customRoomName":
		room.CustomRoomName = value
	case "cost":
		v := parseAmount(value)
		for _, opt := range catalog {
			if opt.Value == v {
				locked := entities.Amount(opt.Value)
				room.LockedPrice = &locked
				break
			}
		}
		room.Cost = entities.Amount(v)
	case "squareFootage":
		room.SquareFootage = entities.Amount(parseAmount(value))
	case "note":
		room.Note = value
	}
}

// ApplyExtraField mutates one extra field. Setting "cost" locks the parsed
// value unconditionally, catalog match or not.
func ApplyExtraField(extra *entities.ExtraLineItem, field, value string) {
	switch field {
	case "type":
		extra.Type = value
	case "customType":
		extra.CustomType = value
	case "cost":
		v := parseAmount(value)
		locked := entities.Amount(v)
		extra.LockedCost = &locked
		extra.Cost = entities.Amount(v)
	}
}

// NextNumber assigns the next sequential record number, unique across every
// bucket passed in. Numbers parse as base-10 integers; invalid or missing
// entries are dropped. The result is zero-padded to at least two digits.
//
// Two drafts numbered before either is saved will both receive the same
// number; accepted for the single-user flow.
func NextNumber(buckets ...[]entities.Record) string {
	max := 0
	for _, bucket := range buckets {
		for _, r := range bucket {
			n, err := strconv.Atoi(strings.TrimSpace(r.EstimateNumber))
			if err != nil || n <= 0 {
				continue
			}
			if n > max {
				max = n
			}
		}
	}
	next := strconv.Itoa(max + 1)
	for len(next) < 2 {
		next = "0" + next
	}
	return next
}

func parseAmount(value string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return v
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
