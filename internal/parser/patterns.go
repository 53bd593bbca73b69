package parser

import (
	"regexp"
	"strings"
)

// HeaderMarker is the column-header line that opens the transaction listing
// on each statement page. Matched case-insensitively as a substring.
const HeaderMarker = "POSTED DATE TRANSACTION DATE DESCRIPTION AMOUNT (SGD)"

// sectionHeadings are fixed group labels inside the listing. They carry no
// transaction data and are skipped. Matched by exact uppercased equality.
var sectionHeadings = map[string]struct{}{
	"PURCHASE":             {},
	"REPAYMENT/CONVERSION": {},
	"CASHBACK":             {},
	"GENERAL":              {},
}

var (
	// A transaction opens with two DD MON tokens: posted date, then
	// transaction date, then the remainder of the line.
	dateLineRe = regexp.MustCompile(`(?i)^(\d{2}\s+[A-Z]{3})\s+(\d{2}\s+[A-Z]{3})\s*(.*)$`)

	// Signed amount with thousands separators and exactly two decimals,
	// e.g. "-1,234.50" or "+ 12.00".
	amountRe = regexp.MustCompile(`([+-])\s*([\d,]+\.\d{2})`)

	// Page footer, tested against the uppercased line.
	pageFooterRe = regexp.MustCompile(`^PAGE\s+\d+\s+OF\s+\d+$`)
)

// MatchDatePair reports whether the line opens a transaction, returning the
// uppercased posted and transaction dates and the untrimmed remainder.
func MatchDatePair(line string) (posted, tran, rest string, ok bool) {
	m := dateLineRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", "", false
	}
	return strings.ToUpper(m[1]), strings.ToUpper(m[2]), m[3], true
}

// IsDatePair reports whether the line matches the date-pair pattern.
func IsDatePair(line string) bool {
	return dateLineRe.MatchString(line)
}

// HasAmount reports whether the line contains a signed amount.
func HasAmount(line string) bool {
	return amountRe.MatchString(line)
}

// FirstAmount returns the sign and comma-free numeric text of the first
// signed amount in the line.
func FirstAmount(line string) (sign, digits string, ok bool) {
	m := amountRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.ReplaceAll(m[2], ",", ""), true
}

// lastAmount returns the final signed amount in s as "±NNN.NN" (sign glued
// to the digits) plus the index where the match starts. ok is false when s
// holds no amount.
func lastAmount(s string) (amount string, start int, ok bool) {
	matches := amountRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return "", 0, false
	}
	m := matches[len(matches)-1]
	return s[m[2]:m[3]] + s[m[4]:m[5]], m[0], true
}

func isPageFooter(upper string) bool {
	return pageFooterRe.MatchString(upper)
}

func isSectionHeading(upper string) bool {
	_, ok := sectionHeadings[upper]
	return ok
}
