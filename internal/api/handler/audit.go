package handler

import (
	"net/http"

	"github.com/mifos/vnext-auth/internal/api/dto"
	"github.com/mifos/vnext-auth/internal/audit"
)

// AuditHandler handles audit-related HTTP requests.
type AuditHandler struct {
	logPath string
	recent  *audit.MemoryWriter
}

// NewAuditHandler creates a new AuditHandler. logPath is the configured
// audit log; recent may be nil when no in-memory copy is kept.
func NewAuditHandler(logPath string, recent *audit.MemoryWriter) *AuditHandler {
	return &AuditHandler{logPath: logPath, recent: recent}
}

// Events handles GET /api/v1/audit/events.
func (h *AuditHandler) Events(w http.ResponseWriter, r *http.Request) {
	resp := dto.AuditEventsResponse{Events: []dto.AuditEntry{}}
	if h.recent != nil {
		for _, e := range h.recent.Events() {
			resp.Events = append(resp.Events, dto.AuditEntry{
				ID:          e.ID,
				Timestamp:   e.Timestamp,
				EventType:   string(e.EventType),
				Result:      string(e.Result),
				Algorithm:   e.Context.Algorithm,
				Fingerprint: e.Context.Fingerprint,
				Reason:      e.Context.Reason,
				RequestID:   e.Context.RequestID,
				Path:        e.Object.Path,
			})
		}
	}
	respond(w, r, http.StatusOK, resp)
}

// Verify handles POST /api/v1/audit/verify. It checks the hash chain of
// the configured audit log.
func (h *AuditHandler) Verify(w http.ResponseWriter, r *http.Request) {
	if h.logPath == "" {
		respondError(w, r, http.StatusNotFound, &dto.APIError{
			Code:    "AUDIT_DISABLED",
			Message: "no audit log is configured",
		})
		return
	}

	report, err := audit.VerifyChain(h.logPath)
	resp := dto.AuditVerifyResponse{Valid: err == nil}
	if report != nil {
		resp.EntryCount = report.Events
		resp.FirstEntry = report.First
		resp.LastEntry = report.Last
		resp.LastHash = report.LastHash
		resp.Failures = report.Failures
	}
	if err != nil {
		resp.Errors = []string{err.Error()}
	}
	respond(w, r, http.StatusOK, resp)
}
