package records

import "github.com/HailXD/mari-analyse/internal/models"

// Range tier breakpoints.
const (
	midBreak  = 10.0
	highBreak = 50.0
)

// RangeFor buckets a price into its tier: below 10 low, 10 to just under
// 50 mid, 50 and above high.
func RangeFor(price float64) models.RangeTier {
	switch {
	case price >= highBreak:
		return models.RangeHigh
	case price >= midBreak:
		return models.RangeMid
	default:
		return models.RangeLow
	}
}
