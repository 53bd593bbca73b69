package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HailXD/mari-analyse/internal/models"
	"github.com/HailXD/mari-analyse/internal/report"
)

func TestText(t *testing.T) {
	lines := []string{"15 JAN 16 JAN SHOP", "-5.00"}
	got := Text(lines)
	want := "15 JAN 16 JAN SHOP\n-5.00\n"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	if Text(nil) != "" {
		t.Errorf("Text(nil) = %q, want empty", Text(nil))
	}
}

func TestTextWriterWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.txt")
	w := &TextWriter{}
	if err := w.WriteToFile(path, []string{"15 JAN 16 JAN SHOP", "-5.00"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "15 JAN 16 JAN SHOP\n-5.00\n" {
		t.Errorf("file content = %q", string(data))
	}
}

func TestCSVWriterWrite(t *testing.T) {
	rows := []models.TransactionRecord{
		{Item: "STARBUCKS COFFEE", Category: "food", Price: 15.00, Range: models.RangeMid},
		{Item: "NTUC, FAIRPRICE", Category: "grocery", Price: 80.00, Range: models.RangeHigh},
	}
	summary := report.Summarize(rows, []string{"food", "grocery", "others"})

	var buf bytes.Buffer
	w := &CSVWriter{IncludeSummary: true}
	if err := w.Write(&buf, rows, summary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "Item,Category,Price,Range" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "STARBUCKS COFFEE,food,15.00,mid" {
		t.Errorf("row 1 = %q", lines[1])
	}
	// Comma in the item must be quoted by the CSV encoder.
	if lines[2] != `"NTUC, FAIRPRICE",grocery,80.00,high` {
		t.Errorf("row 2 = %q", lines[2])
	}
	if !strings.Contains(out, "# total,,95.00,") {
		t.Errorf("missing total row in %q", out)
	}
	if !strings.Contains(out, "# food (high),,0.00,") {
		t.Errorf("missing food (high) row in %q", out)
	}
}

func TestCSVWriterWithoutSummary(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	if err := w.Write(&buf, nil, report.Summary{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "#") {
		t.Errorf("summary rows written without IncludeSummary: %q", buf.String())
	}
}
