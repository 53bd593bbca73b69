package report

import (
	"sort"

	"github.com/HailXD/mari-analyse/internal/models"
)

// SortKey selects the dimension records are ordered by.
type SortKey string

const (
	SortByPrice    SortKey = "price"
	SortByRange    SortKey = "range"
	SortByCategory SortKey = "category"
	SortByItem     SortKey = "item"
)

// Sort orders rows in place by the given key. The sort is stable, so ties
// keep their input order. Unknown keys sort by item.
func Sort(rows []models.TransactionRecord, key SortKey, descending bool) {
	less := lessFunc(key)
	sort.SliceStable(rows, func(i, j int) bool {
		if descending {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

func lessFunc(key SortKey) func(a, b models.TransactionRecord) bool {
	switch key {
	case SortByPrice:
		return func(a, b models.TransactionRecord) bool { return a.Price < b.Price }
	case SortByRange:
		return func(a, b models.TransactionRecord) bool {
			return models.TierRank(a.Range) < models.TierRank(b.Range)
		}
	case SortByCategory:
		return func(a, b models.TransactionRecord) bool { return a.Category < b.Category }
	default:
		return func(a, b models.TransactionRecord) bool { return a.Item < b.Item }
	}
}
