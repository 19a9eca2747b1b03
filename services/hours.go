package services

import "math"

// Rounding explanations shown next to each category total.
const (
	ExplainInstall           = "Total hours have been rounded off to the next multiple of 8"
	ExplainProjectManagement = "Total Hours represent 25% of the Install Total Hours"
	ExplainDefault           = "Total hours have been rounded off to the next multiple of 2"
)

const (
	installRoundingBase = 8
	defaultRoundingBase = 2
	projectMgmtShare    = 0.25
)

// LineItem is one estimated task in a room.
type LineItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	HoursPerTask float64 `json:"hoursPerTask"`
	QtyPerTask   float64 `json:"qtyPerTask"`
}

// Subtotal is hours-per-task times quantity.
func (li LineItem) Subtotal() float64 {
	return li.HoursPerTask * li.QtyPerTask
}

// RoomLineItems maps category -> subcategory -> ordered line items.
type RoomLineItems map[string]map[string][]LineItem

// CategoryTotal is the rounded hour total for one category.
type CategoryTotal struct {
	Category    string
	Raw         float64
	Hours       float64
	Explanation string
}

// RoomTotals holds every category total for one room.
type RoomTotals struct {
	Categories []CategoryTotal
	TotalHours float64
}

// RoundUpToMultiple rounds value up to the next multiple of base. A
// non-positive base leaves value unchanged.
func RoundUpToMultiple(value, base float64) float64 {
	if base <= 0 {
		return value
	}
	return math.Ceil(value/base) * base
}

// SubcategorySubtotal sums the unrounded subtotals of one line-item list.
func SubcategorySubtotal(items []LineItem) float64 {
	var sum float64
	for _, li := range items {
		sum += li.Subtotal()
	}
	return sum
}

// CategoryRawHours sums every line item in every subcategory of category.
func CategoryRawHours(items RoomLineItems, category string) float64 {
	var sum float64
	for _, list := range items[category] {
		sum += SubcategorySubtotal(list)
	}
	return sum
}

// CategoryHours applies the rounding policy for category:
//   - Install rounds up to a multiple of 8.
//   - Project Management is 25% of the rounded Install total, rounded up to a
//     multiple of 2. Its own line items are not counted.
//   - Everything else rounds up to a multiple of 2.
func CategoryHours(items RoomLineItems, category string) CategoryTotal {
	switch category {
	case CategoryInstall:
		raw := CategoryRawHours(items, category)
		return CategoryTotal{
			Category:    category,
			Raw:         raw,
			Hours:       RoundUpToMultiple(raw, installRoundingBase),
			Explanation: ExplainInstall,
		}
	case CategoryProjectManagement:
		install := CategoryHours(items, CategoryInstall).Hours
		raw := install * projectMgmtShare
		return CategoryTotal{
			Category:    category,
			Raw:         raw,
			Hours:       RoundUpToMultiple(raw, defaultRoundingBase),
			Explanation: ExplainProjectManagement,
		}
	default:
		raw := CategoryRawHours(items, category)
		return CategoryTotal{
			Category:    category,
			Raw:         raw,
			Hours:       RoundUpToMultiple(raw, defaultRoundingBase),
			Explanation: ExplainDefault,
		}
	}
}

// SummarizeRoom totals every category in order and adds up the rounded hours.
func SummarizeRoom(items RoomLineItems, categories []string) RoomTotals {
	totals := RoomTotals{Categories: make([]CategoryTotal, 0, len(categories))}
	for _, c := range categories {
		ct := CategoryHours(items, c)
		totals.Categories = append(totals.Categories, ct)
		totals.TotalHours += ct.Hours
	}
	return totals
}
