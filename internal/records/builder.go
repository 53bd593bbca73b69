package records

import (
	"math"
	"strconv"
	"strings"

	"github.com/HailXD/mari-analyse/internal/models"
	"github.com/HailXD/mari-analyse/internal/parser"
)

// BuildRecords re-parses the two-line-per-transaction text block into
// classified records. Odd lines describe the transaction, even lines carry
// the signed amount; a trailing unpaired line is ignored. Pairs whose
// amount is unparseable, and credit (positive) amounts, are dropped.
func BuildRecords(text string, c *Classifier) []models.TransactionRecord {
	if c == nil {
		c = NewClassifier(nil)
	}
	var lines []string
	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}

	var records []models.TransactionRecord
	for i := 0; i < len(lines); i += 2 {
		descLine := lines[i]
		amountLine := ""
		if i+1 < len(lines) {
			amountLine = lines[i+1]
		}
		item := extractItem(descLine)
		price, credit, ok := parseAmountLine(amountLine)
		if !ok || credit {
			continue
		}
		records = append(records, models.TransactionRecord{
			Item:     item,
			Category: c.Classify(item),
			Price:    price,
			Range:    RangeFor(price),
			Credit:   credit,
			Index:    len(records),
		})
	}
	return records
}

// extractItem strips the date pair from a header line. Method lines can
// coincidentally resemble date-pair lines, so the captured remainder is
// used whenever the pattern matches; otherwise the whole line is the item.
func extractItem(line string) string {
	if _, _, rest, ok := parser.MatchDatePair(line); ok {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(line)
}

// parseAmountLine reads the first signed amount on the line. ok is false
// when no amount is present or the digits do not parse.
func parseAmountLine(line string) (price float64, credit bool, ok bool) {
	sign, digits, found := parser.FirstAmount(line)
	if !found {
		return 0, false, false
	}
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false, false
	}
	return math.Abs(value), sign == "+", true
}
