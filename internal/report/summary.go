package report

import (
	"sort"

	"github.com/HailXD/mari-analyse/internal/models"
)

// CategoryTotal is the summed spend for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// Summary aggregates a (filtered) record set: spend per category, the
// grand total, and the fixed food/high-tier cross-cut.
type Summary struct {
	Categories    []CategoryTotal `json:"categories"`
	Total         float64         `json:"total"`
	FoodHighTotal float64         `json:"foodHighTotal"`
}

// Summarize computes per-category totals over rows. categoryOrder fixes
// the listing order; categories outside it are appended sorted, with
// "others" last.
func Summarize(rows []models.TransactionRecord, categoryOrder []string) Summary {
	totals := map[string]float64{}
	var s Summary
	for _, row := range rows {
		s.Total += row.Price
		totals[row.Category] += row.Price
		if row.Category == "food" && row.Range == models.RangeHigh {
			s.FoodHighTotal += row.Price
		}
	}

	for _, category := range summaryOrder(totals, categoryOrder) {
		s.Categories = append(s.Categories, CategoryTotal{Category: category, Total: totals[category]})
	}
	return s
}

func summaryOrder(totals map[string]float64, categoryOrder []string) []string {
	var order []string
	seen := map[string]bool{}
	for _, category := range categoryOrder {
		if _, ok := totals[category]; ok {
			order = append(order, category)
			seen[category] = true
		}
	}
	var extras []string
	hasOthers := false
	for category := range totals {
		if seen[category] {
			continue
		}
		if category == "others" {
			hasOthers = true
			continue
		}
		extras = append(extras, category)
	}
	sort.Strings(extras)
	order = append(order, extras...)
	if hasOthers {
		order = append(order, "others")
	}
	return order
}
