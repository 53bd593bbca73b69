package extractor

import (
	"sort"
	"strings"
)

// TextFragment is one positioned piece of text produced by the PDF engine.
type TextFragment struct {
	Content  string
	X, Y     float64
	EndsLine bool
}

// yThreshold is the vertical distance within which fragments are treated
// as belonging to the same visual row.
const yThreshold = 2.0

// BuildLines reconstructs visual rows from positioned fragments. Fragments
// are sorted top-to-bottom (descending Y, PDF coordinates grow upward) and
// left-to-right within a row. Fragment text is joined with single spaces
// and internal whitespace runs are collapsed. Whitespace-only fragments and
// empty rows are dropped.
func BuildLines(fragments []TextFragment) []string {
	items := make([]TextFragment, 0, len(fragments))
	for _, f := range fragments {
		if strings.TrimSpace(f.Content) == "" {
			continue
		}
		items = append(items, f)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Y != items[j].Y {
			return items[i].Y > items[j].Y
		}
		return items[i].X < items[j].X
	})

	var lines []string
	var current []string
	currentY := 0.0
	flush := func() {
		if len(current) == 0 {
			return
		}
		if line := collapseWhitespace(strings.Join(current, " ")); line != "" {
			lines = append(lines, line)
		}
		current = current[:0]
	}
	for _, item := range items {
		if len(current) > 0 && abs(item.Y-currentY) > yThreshold {
			flush()
		}
		if len(current) == 0 {
			currentY = item.Y
		}
		current = append(current, item.Content)
	}
	flush()
	return lines
}

// BuildLinesByFlag reconstructs rows from fragments that carry an
// end-of-line marker instead of positions. Fragment order is taken as-is.
func BuildLinesByFlag(fragments []TextFragment) []string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f.Content)
		if f.EndsLine {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	var lines []string
	for _, raw := range strings.Split(b.String(), "\n") {
		if line := collapseWhitespace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
