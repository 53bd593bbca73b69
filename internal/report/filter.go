package report

import (
	"strings"

	"github.com/HailXD/mari-analyse/internal/models"
)

// Filter narrows a record set. Zero values leave the corresponding
// dimension unfiltered: an empty category selection admits every
// configured category, and a nil price bound is unbounded.
type Filter struct {
	Search     string
	Categories []string
	Ranges     []models.RangeTier
	MinPrice   *float64
	MaxPrice   *float64
}

// Apply returns the records passing every filter dimension, preserving
// input order. configuredCategories backs the empty-selection default.
func Apply(rows []models.TransactionRecord, f Filter, configuredCategories []string) []models.TransactionRecord {
	search := strings.ToUpper(strings.TrimSpace(f.Search))
	allowed := f.Categories
	if len(allowed) == 0 {
		allowed = configuredCategories
	}

	out := make([]models.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		if search != "" &&
			!strings.Contains(strings.ToUpper(row.Item), search) &&
			!strings.Contains(strings.ToUpper(row.Category), search) {
			continue
		}
		if !containsString(allowed, row.Category) {
			continue
		}
		if len(f.Ranges) > 0 && !containsTier(f.Ranges, row.Range) {
			continue
		}
		if f.MinPrice != nil && row.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && row.Price > *f.MaxPrice {
			continue
		}
		out = append(out, row)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsTier(list []models.RangeTier, t models.RangeTier) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}
