// Package httptransport is the thin HTTP layer. It delegates to the
// assessment service without embedding business logic so transport concerns
// remain isolated.
package httptransport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"attest/internal/assessment"
	"attest/internal/extract"
	"attest/internal/platform/config"
	dErrors "attest/pkg/domain-errors"
	"attest/pkg/platform/httputil"
	"attest/pkg/requestcontext"
)

// documentField is the multipart form field carrying the uploaded policy.
const documentField = "document"

// Assessor runs the full assessment pipeline for one extracted document.
type Assessor interface {
	Assess(ctx context.Context, doc *extract.Document) (*assessment.Report, error)
}

// Handler wires the compliance endpoints to their collaborators.
type Handler struct {
	cfg       config.Server
	assessor  Assessor
	extractor extract.Extractor
	logger    *slog.Logger

	// configErr records a judge misconfiguration found at startup. The server
	// stays up (health checks must answer) but assessments fail with a 500
	// before any document work begins.
	configErr error
}

// New constructs the handler. configErr may be nil.
func New(cfg config.Server, assessor Assessor, extractor extract.Extractor, configErr error, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:       cfg,
		assessor:  assessor,
		extractor: extractor,
		logger:    logger,
		configErr: configErr,
	}
}

// HandleAssess handles POST /api/compliance: one multipart PDF upload in,
// one compliance report out.
func (h *Handler) HandleAssess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	if h.configErr != nil {
		httputil.WriteError(w, h.configErr)
		return
	}

	data, filename, err := h.readUpload(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	doc, err := h.extractor.Extract(data, filename)
	if err != nil {
		h.logger.WarnContext(ctx, "document extraction failed",
			"request_id", requestID,
			"filename", filename,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	report, err := h.assessor.Assess(ctx, doc)
	if err != nil {
		h.logger.ErrorContext(ctx, "assessment failed",
			"request_id", requestID,
			"filename", filename,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "assessment complete",
		"request_id", requestID,
		"filename", filename,
		"controls", len(report.Results),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) readUpload(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		return nil, "", dErrors.Wrap(err, dErrors.CodeBadRequest, "request must be multipart/form-data with a document file")
	}

	file, header, err := r.FormFile(documentField)
	if err != nil {
		return nil, "", dErrors.New(dErrors.CodeBadRequest, "document file field is required")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, config.MaxUploadBytes))
	if err != nil {
		return nil, "", dErrors.Wrap(err, dErrors.CodeBadRequest, "failed to read uploaded document")
	}
	if len(data) == 0 {
		return nil, "", dErrors.New(dErrors.CodeBadRequest, "uploaded document is empty")
	}
	return data, header.Filename, nil
}

// HandleHealth handles GET /healthz. The payload echoes non-secret judge
// configuration presence so deployments are debuggable without log access.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"status": "warm",
		"environment_check": map[string]any{
			"endpoint_configured": h.cfg.Judge.Endpoint != "",
			"deployment":          h.cfg.Judge.Deployment,
			"api_version":         h.cfg.Judge.APIVersion,
			"key_present":         h.cfg.Judge.APIKey != "",
		},
	})
}
