package models

// RangeTier buckets a transaction price into one of three bands.
// Breakpoints: below 10 is low, 10 up to but excluding 50 is mid,
// 50 and above is high.
type RangeTier string

const (
	RangeLow  RangeTier = "low"
	RangeMid  RangeTier = "mid"
	RangeHigh RangeTier = "high"
)

// TierRank returns the sort position of a tier (low < mid < high).
// Unknown tiers sort first.
func TierRank(t RangeTier) int {
	switch t {
	case RangeMid:
		return 1
	case RangeHigh:
		return 2
	default:
		return 0
	}
}

// TransactionRecord is one classified statement transaction. The
// builder keeps debits only, so Credit is false on every stored record;
// the field records the sign seen on the amount line.
type TransactionRecord struct {
	Item     string    `json:"item"`
	Category string    `json:"category"`
	Price    float64   `json:"price"`
	Range    RangeTier `json:"range"`
	Credit   bool      `json:"credit"`
	Index    int       `json:"index"`
}
