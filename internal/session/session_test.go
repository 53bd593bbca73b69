package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HailXD/mari-analyse/internal/logger"
	"github.com/HailXD/mari-analyse/internal/report"
)

func writeMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestSession(t *testing.T, mapContent string) *Session {
	t.Helper()
	return New(writeMap(t, mapContent), logger.NewWithWriter(os.Stderr))
}

const statementText = "15 JAN 16 JAN STARBUCKS COFFEE\n-15.00\n17 JAN 18 JAN NTUC FAIRPRICE\n-80.00\n20 JAN 21 JAN REBATE\n+5.00\n"

func TestLoadTextBuildsRecords(t *testing.T) {
	s := newTestSession(t, `{"food": ["STARBUCKS"], "grocery": ["NTUC"]}`)
	s.LoadText("statement.txt", statementText)

	require.Len(t, s.Rows, 2)
	assert.Equal(t, "food", s.Rows[0].Category)
	assert.Equal(t, "grocery", s.Rows[1].Category)
	assert.Equal(t, "loaded 2 transactions", s.Status)
	assert.Equal(t, "statement.txt", s.FileName)
}

func TestMissingMapFallsBackToOthers(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.json"), logger.NewWithWriter(os.Stderr))
	assert.Equal(t, StatusMapFallback, s.Status)

	s.LoadText("statement.txt", statementText)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, "others", s.Rows[0].Category)
	assert.Equal(t, "others", s.Rows[1].Category)
}

func TestReloadMapRecategorizesLoadedRows(t *testing.T) {
	mapPath := writeMap(t, `{}`)
	s := New(mapPath, logger.NewWithWriter(os.Stderr))
	s.LoadText("statement.txt", statementText)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, "others", s.Rows[0].Category)

	require.NoError(t, os.WriteFile(mapPath, []byte(`{"food": ["STARBUCKS"]}`), 0o644))
	s.ReloadMap()
	assert.Equal(t, "food", s.Rows[0].Category)
	assert.Equal(t, "others", s.Rows[1].Category)
}

func TestLoadPDFFailureRollsBackToEmpty(t *testing.T) {
	s := newTestSession(t, `{}`)
	s.LoadText("statement.txt", statementText)
	require.NotEmpty(t, s.Rows)

	err := s.LoadPDF(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.Empty(t, s.Rows)
	assert.Empty(t, s.Text)
	assert.Empty(t, s.FileName)
	assert.Equal(t, StatusReadFailed, s.Status)
}

func TestClear(t *testing.T) {
	s := newTestSession(t, `{}`)
	s.LoadText("statement.txt", statementText)
	s.Clear()

	assert.Empty(t, s.Rows)
	assert.Empty(t, s.Text)
	assert.Empty(t, s.FileName)
	assert.Equal(t, StatusCleared, s.Status)
}

func TestViewFiltersAndSorts(t *testing.T) {
	s := newTestSession(t, `{"food": ["STARBUCKS"], "grocery": ["NTUC"]}`)
	s.LoadText("statement.txt", statementText)

	rows := s.View(report.Filter{}, report.SortByPrice, true)
	require.Len(t, rows, 2)
	assert.Equal(t, 80.00, rows[0].Price)

	rows = s.View(report.Filter{Categories: []string{"food"}}, report.SortByPrice, false)
	require.Len(t, rows, 1)
	assert.Equal(t, "STARBUCKS COFFEE", rows[0].Item)

	// View must not reorder the session's own rows.
	assert.Equal(t, "STARBUCKS COFFEE", s.Rows[0].Item)
}

func TestConvertPagesParsed(t *testing.T) {
	pages := [][]string{
		{
			"POSTED DATE TRANSACTION DATE DESCRIPTION AMOUNT (SGD)",
			"15 JAN 16 JAN SHOP -5.00",
			"VISA",
		},
	}
	conv := ConvertPages(pages)
	assert.True(t, conv.Parsed)
	assert.Equal(t, 1, conv.Count)
	assert.Equal(t, "15 JAN 16 JAN SHOP\nVISA -5.00\n", conv.Text)
}

func TestConvertPagesRawFallback(t *testing.T) {
	pages := [][]string{
		{"no marker on this page", "just text"},
	}
	conv := ConvertPages(pages)
	assert.False(t, conv.Parsed)
	assert.Zero(t, conv.Count)
	assert.Equal(t, "no marker on this page\njust text\n", conv.Text)
}
