package writer

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// TextWriter writes the normalized two-line-per-transaction statement
// block: odd lines are "<DD MON> <DD MON> <description>", even lines the
// signed amounts. The block round-trips through the record builder.
type TextWriter struct{}

// WriteToFile writes the output lines to path, newline-terminated.
func (w *TextWriter) WriteToFile(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, lines)
}

// Write writes the output lines to out, newline-terminated.
func (w *TextWriter) Write(out io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	if _, err := io.WriteString(out, Text(lines)); err != nil {
		return fmt.Errorf("failed to write statement text: %w", err)
	}
	return nil
}

// Text joins output lines into the downloadable statement block.
func Text(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
