package records

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HailXD/mari-analyse/internal/models"
)

func TestRangeFor(t *testing.T) {
	tests := []struct {
		price float64
		want  models.RangeTier
	}{
		{0, models.RangeLow},
		{9.99, models.RangeLow},
		{10.00, models.RangeMid},
		{49.99, models.RangeMid},
		{50.00, models.RangeHigh},
		{1234.56, models.RangeHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RangeFor(tt.price), "price %.2f", tt.price)
	}
}

func TestTierRankIsMonotonic(t *testing.T) {
	assert.Less(t, models.TierRank(models.RangeLow), models.TierRank(models.RangeMid))
	assert.Less(t, models.TierRank(models.RangeMid), models.TierRank(models.RangeHigh))
}
