package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/HailXD/mari-analyse/internal/models"
	"github.com/HailXD/mari-analyse/internal/records"
	"github.com/HailXD/mari-analyse/internal/report"
	"github.com/HailXD/mari-analyse/internal/session"
)

const version = "1.0.0"

// ConvertResponse is the JSON response from the /api/convert endpoint.
type ConvertResponse struct {
	Success   bool                       `json:"success"`
	Error     string                     `json:"error,omitempty"`
	Status    string                     `json:"status,omitempty"`
	Text      string                     `json:"text,omitempty"`
	Records   []models.TransactionRecord `json:"records"`
	Count     int                        `json:"count"`
	Summary   *report.Summary            `json:"summary,omitempty"`
	RequestID string                     `json:"requestId,omitempty"`
	Version   string                     `json:"version,omitempty"`
}

// Handler holds the HTTP handlers for the API. The classifier is shared
// across requests and swapped wholesale on reload.
type Handler struct {
	MapPath string
	Log     zerolog.Logger

	mu         sync.RWMutex
	classifier *records.Classifier
}

// NewHandler creates a handler and loads the keyword map. Map problems are
// non-fatal; classification falls back to "others".
func NewHandler(mapPath string, log zerolog.Logger) *Handler {
	h := &Handler{MapPath: mapPath, Log: log}
	h.reloadClassifier()
	return h
}

// Register sets up the API routes.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/convert", h.HandleConvert)
	app.Post("/api/map/reload", h.HandleReloadMap)
}

func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleConvert accepts a statement upload (multipart "file", PDF or
// pre-converted text) or a raw "text" form value, and returns the
// normalized text block plus the classified, summarized record set.
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	requestID := uuid.NewString()
	log := h.Log.With().Str("request_id", requestID).Logger()

	text, status, err := h.conversionText(c)
	if err != nil {
		log.Warn().Err(err).Msg("conversion failed")
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error(), requestID)
	}

	classifier := h.currentClassifier()
	rows := records.BuildRecords(text, classifier)
	if status == "" {
		status = fmt.Sprintf("loaded %d transactions", len(rows))
	}
	summary := report.Summarize(rows, classifier.Order)

	if rows == nil {
		rows = []models.TransactionRecord{}
	}
	log.Info().Int("records", len(rows)).Msg("converted statement")
	return c.JSON(ConvertResponse{
		Success:   true,
		Status:    status,
		Text:      text,
		Records:   rows,
		Count:     len(rows),
		Summary:   &summary,
		RequestID: requestID,
		Version:   version,
	})
}

// HandleReloadMap re-reads the keyword map from disk.
func (h *Handler) HandleReloadMap(c *fiber.Ctx) error {
	status := h.reloadClassifier()
	return c.JSON(fiber.Map{"success": true, "status": status})
}

// conversionText resolves the request into a two-line statement block.
// PDFs run the full pipeline; text inputs skip extraction entirely.
func (h *Handler) conversionText(c *fiber.Ctx) (text, status string, err error) {
	if raw := c.FormValue("text"); strings.TrimSpace(raw) != "" {
		return raw, "", nil
	}

	header, err := c.FormFile("file")
	if err != nil {
		return "", "", fmt.Errorf("no file uploaded; use form field 'file' or 'text'")
	}

	name := strings.ToLower(header.Filename)
	tmp, err := os.CreateTemp("", "statement-*"+filepath.Ext(name))
	if err != nil {
		return "", "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	tmp.Close()

	if err := c.SaveFile(header, tmp.Name()); err != nil {
		return "", "", fmt.Errorf("failed to save uploaded file: %w", err)
	}

	if !strings.HasSuffix(name, ".pdf") {
		data, err := os.ReadFile(tmp.Name())
		if err != nil {
			return "", "", fmt.Errorf("failed to read uploaded file: %w", err)
		}
		return string(data), "", nil
	}

	conv, err := session.ConvertPDF(tmp.Name())
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", session.StatusReadFailed, err)
	}
	if !conv.Parsed {
		return conv.Text, session.StatusNoTransactions, nil
	}
	return conv.Text, "", nil
}

func (h *Handler) currentClassifier() *records.Classifier {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.classifier
}

func (h *Handler) reloadClassifier() string {
	m, err := records.LoadKeywordMap(h.MapPath)
	status := session.StatusMapLoaded
	if err != nil {
		h.Log.Warn().Err(err).Str("path", h.MapPath).Msg("keyword map fallback")
		m = nil
		status = session.StatusMapFallback
	}
	h.mu.Lock()
	h.classifier = records.NewClassifier(m)
	h.mu.Unlock()
	return status
}

func writeError(c *fiber.Ctx, code int, msg, requestID string) error {
	return c.Status(code).JSON(ConvertResponse{
		Success:   false,
		Error:     msg,
		Records:   []models.TransactionRecord{},
		RequestID: requestID,
	})
}
