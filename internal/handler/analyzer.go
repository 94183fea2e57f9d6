package handler

import (
	"encoding/json"
	"net/http"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// AnalyzerHandler handles HTTP requests for strength analysis.
type AnalyzerHandler struct {
	service *service.AnalyzerService
}

// NewAnalyzerHandler creates a new AnalyzerHandler.
func NewAnalyzerHandler(svc *service.AnalyzerService) *AnalyzerHandler {
	return &AnalyzerHandler{service: svc}
}

// HandleAnalyze handles POST /api/v1/analyze requests. Analysis never fails:
// an empty password yields the neutral report, not an error.
func (h *AnalyzerHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	var req model.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	writeJSON(w, http.StatusOK, h.service.Analyze(req))
}
