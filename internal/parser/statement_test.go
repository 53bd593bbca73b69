package parser

import (
	"reflect"
	"testing"
)

func TestParseSection(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "transaction with no method line flushes at section end",
			lines: []string{"15 JAN 16 JAN NTUC FAIRPRICE +25.00"},
			want:  []string{"15 JAN 16 JAN NTUC FAIRPRICE", "+25.00"},
		},
		{
			name:  "amount appended to method line without its own amount",
			lines: []string{"15 JAN 16 JAN GRAB -12.50", "VISA DEBIT"},
			want:  []string{"15 JAN 16 JAN GRAB", "VISA DEBIT -12.50"},
		},
		{
			name:  "method line with its own amount emitted as-is",
			lines: []string{"15 JAN 16 JAN GRAB -12.50", "VISA DEBIT -9.99"},
			want:  []string{"15 JAN 16 JAN GRAB", "VISA DEBIT -9.99"},
		},
		{
			name: "page footer ends the section and discards the open transaction",
			lines: []string{
				"15 JAN 16 JAN GRAB -12.50",
				"PAGE 2 OF 5",
				"17 JAN 18 JAN NEVER SEEN -1.00",
			},
			want: nil,
		},
		{
			name: "page footer match is case-insensitive",
			lines: []string{
				"01 FEB 02 FEB SHOP -5.00",
				"VISA",
				"page 3 of 7",
				"17 JAN 18 JAN NEVER SEEN -1.00",
			},
			want: []string{"01 FEB 02 FEB SHOP", "VISA -5.00"},
		},
		{
			name: "buffered lines become the next transaction's description",
			lines: []string{
				"MERCHANT NAME SPANS",
				"TWO LINES",
				"15 JAN 16 JAN -10.00",
				"VISA",
			},
			want: []string{"15 JAN 16 JAN MERCHANT NAME SPANS TWO LINES", "VISA -10.00"},
		},
		{
			name: "section headings are skipped",
			lines: []string{
				"PURCHASE",
				"15 JAN 16 JAN SHOP -5.00",
				"VISA",
				"CASHBACK",
				"20 JAN 21 JAN REBATE +1.00",
				"VISA",
			},
			want: []string{
				"15 JAN 16 JAN SHOP", "VISA -5.00",
				"20 JAN 21 JAN REBATE", "VISA +1.00",
			},
		},
		{
			name: "consecutive date lines flush without a method line",
			lines: []string{
				"15 JAN 16 JAN FIRST -1.00",
				"17 JAN 18 JAN SECOND -2.00",
			},
			want: []string{
				"15 JAN 16 JAN FIRST", "-1.00",
				"17 JAN 18 JAN SECOND", "-2.00",
			},
		},
		{
			name:  "date line with no amount still opens a transaction",
			lines: []string{"15 JAN 16 JAN INSTALMENT PLAN", "VISA"},
			want:  []string{"15 JAN 16 JAN INSTALMENT PLAN", "VISA"},
		},
		{
			name:  "last amount wins when the rest holds several",
			lines: []string{"15 JAN 16 JAN FX 100.00 USD +2.00 -138.20"},
			want:  []string{"15 JAN 16 JAN FX 100.00 USD +2.00", "-138.20"},
		},
		{
			name:  "thousands separators survive in the amount line",
			lines: []string{"03 MAR 04 MAR FURNITURE -1,234.56"},
			want:  []string{"03 MAR 04 MAR FURNITURE", "-1,234.56"},
		},
		{
			name:  "dates are uppercased",
			lines: []string{"15 jan 16 jan coffee -4.50"},
			want:  []string{"15 JAN 16 JAN coffee", "-4.50"},
		},
		{
			name:  "blank lines are ignored",
			lines: []string{"", "  ", "15 JAN 16 JAN SHOP -5.00", ""},
			want:  []string{"15 JAN 16 JAN SHOP", "-5.00"},
		},
		{
			name:  "empty section yields nothing",
			lines: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSection(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSection() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSectionNeverHoldsTwoPending(t *testing.T) {
	// Each date line must close the previous transaction before a new one
	// opens: every transaction appears exactly once in the output.
	lines := []string{
		"01 JAN 02 JAN A -1.00",
		"03 JAN 04 JAN B -2.00",
		"05 JAN 06 JAN C -3.00",
		"VISA",
	}
	got := ParseSection(lines)
	want := []string{
		"01 JAN 02 JAN A", "-1.00",
		"03 JAN 04 JAN B", "-2.00",
		"05 JAN 06 JAN C", "VISA -3.00",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSection() = %q, want %q", got, want)
	}
}

func TestFlushEmptyPendingEmitsNothing(t *testing.T) {
	p := &sectionParser{pending: &pendingTxn{}}
	p.flush()
	if len(p.out) != 0 {
		t.Errorf("flush of empty pending emitted %q, want nothing", p.out)
	}
	if p.pending != nil {
		t.Error("pending not cleared after flush")
	}
}

func TestParsePages(t *testing.T) {
	pages := [][]string{
		{"Statement summary", "no marker here"},
		{
			"Posted Date Transaction Date Description Amount (SGD)",
			"15 JAN 16 JAN SHOP -5.00",
			"VISA",
		},
		{
			"POSTED DATE TRANSACTION DATE DESCRIPTION AMOUNT (SGD)",
			"17 JAN 18 JAN CAFE -3.00",
		},
	}
	got := ParsePages(pages)
	want := []string{
		"15 JAN 16 JAN SHOP", "VISA -5.00",
		"17 JAN 18 JAN CAFE", "-3.00",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParsePages() = %q, want %q", got, want)
	}
}
