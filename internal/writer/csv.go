package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/HailXD/mari-analyse/internal/models"
	"github.com/HailXD/mari-analyse/internal/report"
)

// CSVWriter exports classified records as CSV.
type CSVWriter struct {
	IncludeSummary bool
}

// WriteToFile writes the record table to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, rows []models.TransactionRecord, summary report.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, rows, summary)
}

// Write writes the record table in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, rows []models.TransactionRecord, summary report.Summary) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := []string{"Item", "Category", "Price", "Range"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Item,
			row.Category,
			formatPrice(row.Price),
			string(row.Range),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	if w.IncludeSummary {
		for _, ct := range summary.Categories {
			writer.Write([]string{"# " + ct.Category, "", formatPrice(ct.Total), ""})
		}
		writer.Write([]string{"# food (high)", "", formatPrice(summary.FoodHighTotal), ""})
		writer.Write([]string{"# total", "", formatPrice(summary.Total), ""})
	}

	return writer.Error()
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
