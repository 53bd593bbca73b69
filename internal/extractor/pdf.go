package extractor

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractPages reads a statement PDF and returns the cleaned text lines of
// each page. The structured library is tried first; if it fails or yields
// unreadable text, the external pdftotext command (poppler-utils) is used
// as a last resort. On total failure no partial result is returned.
func ExtractPages(filePath string) ([][]string, error) {
	pages, libErr := extractWithLibrary(filePath)
	if libErr == nil && isReadable(pages) {
		return pages, nil
	}

	popplerPages, popplerErr := extractWithPdftotext(filePath)
	if popplerErr == nil && isReadable(popplerPages) {
		return popplerPages, nil
	}

	if libErr != nil {
		return nil, fmt.Errorf("PDF text extraction failed: %w", libErr)
	}
	return nil, fmt.Errorf("no readable text could be extracted from the PDF; the file may be image-based or use undecodable font encodings")
}

// extractWithLibrary uses ledongthuc/pdf. The positioned-content method is
// preferred because it preserves column layout; row extraction is the
// fallback. The library panics on some malformed files, hence the recover.
func extractWithLibrary(filePath string) (pages [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return nil, openErr
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	pages = extractByContent(r, numPages)
	if isReadable(pages) {
		return pages, nil
	}

	pages = extractByRow(r, numPages)
	return pages, nil
}

// extractByContent reads positioned text objects from each page and
// reassembles them into visual rows.
func extractByContent(r *pdf.Reader, numPages int) [][]string {
	var pages [][]string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		if len(content.Text) == 0 {
			continue
		}
		fragments := make([]TextFragment, 0, len(content.Text))
		for _, t := range content.Text {
			fragments = append(fragments, TextFragment{Content: t.S, X: t.X, Y: t.Y})
		}
		if lines := BuildLines(fragments); len(lines) > 0 {
			pages = append(pages, lines)
		}
	}
	return pages
}

func extractByRow(r *pdf.Reader, numPages int) [][]string {
	var pages [][]string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := collapseWhitespace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			pages = append(pages, lines)
		}
	}
	return pages
}

// extractWithPdftotext shells out to poppler-utils, one page at a time so
// page boundaries survive.
func extractWithPdftotext(filePath string) ([][]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %w", err)
	}

	numPages := 1
	if out, err := exec.Command("pdfinfo", filePath).Output(); err == nil {
		for _, line := range strings.Split(string(out), "\n") {
			if strings.HasPrefix(line, "Pages:") {
				if n, parseErr := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:"))); parseErr == nil && n > 0 {
					numPages = n
				}
			}
		}
	}

	var pages [][]string
	for i := 1; i <= numPages; i++ {
		pageStr := strconv.Itoa(i)
		out, err := exec.Command("pdftotext", "-layout", "-f", pageStr, "-l", pageStr, filePath, "-").Output()
		if err != nil {
			continue
		}
		if lines := SplitLines(string(out)); len(lines) > 0 {
			pages = append(pages, lines)
		}
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftotext produced no output")
	}
	return pages, nil
}

// SplitLines splits raw text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// statementWords are words expected somewhere in a card statement. Text
// containing none of them is treated as garbage from a broken extraction.
var statementWords = []string{
	"posted", "transaction", "date", "description", "amount",
	"statement", "card", "payment", "purchase", "balance", "page", "total",
}

// isReadable guards against extraction methods that succeed but return
// binary garbage: enough text, mostly ASCII, and at least one word a
// statement would contain.
func isReadable(pages [][]string) bool {
	total := 0
	readable := 0
	var combined strings.Builder
	for _, page := range pages {
		for _, line := range page {
			combined.WriteString(line)
			combined.WriteString(" ")
			for _, r := range line {
				total++
				if r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune(".,-/:;()+$'\"%&", r)) {
					readable++
				}
			}
		}
	}
	if total <= 50 {
		return false
	}
	if float64(readable)/float64(total) <= 0.6 {
		return false
	}
	lower := strings.ToLower(combined.String())
	for _, word := range statementWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
