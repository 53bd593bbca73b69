// Package session holds the explicit application state: the loaded keyword
// map, the current record set and the user-facing status line. It replaces
// any notion of process-wide globals; everything downstream receives state
// through it.
package session

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/HailXD/mari-analyse/internal/models"
	"github.com/HailXD/mari-analyse/internal/records"
	"github.com/HailXD/mari-analyse/internal/report"
)

// Status strings surfaced to the user. Recoverable conditions degrade to
// an empty or default result with one of these; nothing here panics.
const (
	StatusReadFailed     = "failed to read the PDF"
	StatusNoTransactions = "no transactions found"
	StatusMapFallback    = "keyword map not loaded, using defaults"
	StatusMapLoaded      = "keyword map loaded"
	StatusCleared        = "cleared"
)

// Session is one user's loaded statement plus classification config.
type Session struct {
	log        zerolog.Logger
	mapPath    string
	classifier *records.Classifier

	FileName string
	Status   string
	Text     string
	Rows     []models.TransactionRecord
}

// New creates a session and loads the keyword map from mapPath. A missing
// or malformed map is not fatal: classification falls back to "others".
func New(mapPath string, log zerolog.Logger) *Session {
	s := &Session{
		log:        log,
		mapPath:    mapPath,
		classifier: records.NewClassifier(nil),
	}
	s.ReloadMap()
	return s
}

// ReloadMap re-reads the keyword map and recategorizes any loaded rows.
func (s *Session) ReloadMap() {
	m, err := records.LoadKeywordMap(s.mapPath)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.mapPath).Msg("keyword map fallback")
		s.classifier = records.NewClassifier(nil)
		s.Status = StatusMapFallback
		return
	}
	s.classifier = records.NewClassifier(m)
	s.Status = StatusMapLoaded
	if len(s.Rows) > 0 {
		s.Recategorize()
	}
}

// LoadPDF converts a statement PDF and rebuilds the record set. On
// extraction failure the session rolls back to empty and the error is
// returned alongside the failure status.
func (s *Session) LoadPDF(path string) error {
	conv, err := ConvertPDF(path)
	if err != nil {
		s.Rows = nil
		s.Text = ""
		s.FileName = ""
		s.Status = StatusReadFailed
		s.log.Error().Err(err).Str("path", path).Msg("statement load failed")
		return err
	}
	s.FileName = path
	s.Text = conv.Text
	s.Rows = records.BuildRecords(conv.Text, s.classifier)
	if !conv.Parsed {
		s.Status = StatusNoTransactions
	} else {
		s.Status = fmt.Sprintf("loaded %d transactions", len(s.Rows))
	}
	s.log.Info().Str("path", path).Int("pairs", conv.Count).Int("records", len(s.Rows)).Msg("statement loaded")
	return nil
}

// LoadText rebuilds the record set from an already-converted two-line
// block, skipping extraction and parsing entirely.
func (s *Session) LoadText(name, text string) {
	s.FileName = name
	s.Text = text
	s.Rows = records.BuildRecords(text, s.classifier)
	s.Status = fmt.Sprintf("loaded %d transactions", len(s.Rows))
}

// Recategorize re-derives every row's category from the current keyword
// map without re-parsing the statement.
func (s *Session) Recategorize() {
	for i := range s.Rows {
		s.Rows[i].Category = s.classifier.Classify(s.Rows[i].Item)
	}
}

// Clear resets the session to its empty state.
func (s *Session) Clear() {
	s.Rows = nil
	s.Text = ""
	s.FileName = ""
	s.Status = StatusCleared
}

// CategoryOrder exposes the configured category scan order.
func (s *Session) CategoryOrder() []string {
	return s.classifier.Order
}

// View filters and sorts the loaded rows without mutating them.
func (s *Session) View(f report.Filter, key report.SortKey, descending bool) []models.TransactionRecord {
	rows := report.Apply(s.Rows, f, s.classifier.Order)
	report.Sort(rows, key, descending)
	return rows
}

// Summarize aggregates the given (usually filtered) rows.
func (s *Session) Summarize(rows []models.TransactionRecord) report.Summary {
	return report.Summarize(rows, s.classifier.Order)
}
