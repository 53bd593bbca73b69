package session

import (
	"github.com/HailXD/mari-analyse/internal/extractor"
	"github.com/HailXD/mari-analyse/internal/parser"
	"github.com/HailXD/mari-analyse/internal/writer"
)

// Conversion is the outcome of turning statement pages into the two-line
// output block.
type Conversion struct {
	// Lines are the parser's emitted output lines.
	Lines []string
	// Text is the downloadable block. When no section parsed, it falls
	// back to the raw page lines so the user still sees what was read.
	Text string
	// Count is the number of transaction pairs.
	Count int
	// Parsed reports whether any section yielded output lines.
	Parsed bool
}

// ConvertPDF extracts a statement PDF and runs the parsing pipeline.
// Extraction failure is terminal; a PDF with no matching sections is not
// an error and yields a Conversion with Parsed false.
func ConvertPDF(path string) (Conversion, error) {
	pages, err := extractor.ExtractPages(path)
	if err != nil {
		return Conversion{}, err
	}
	return ConvertPages(pages), nil
}

// ConvertPages runs section extraction and the statement-line parser over
// per-page line lists.
func ConvertPages(pages [][]string) Conversion {
	lines := parser.ParsePages(pages)
	if len(lines) == 0 {
		var raw []string
		for _, page := range pages {
			raw = append(raw, page...)
		}
		return Conversion{Text: writer.Text(raw)}
	}
	return Conversion{
		Lines:  lines,
		Text:   writer.Text(lines),
		Count:  len(lines) / 2,
		Parsed: true,
	}
}
