package handler

import (
	"net/http"

	"github.com/mifos/vnext-auth/internal/api/dto"
	apierrors "github.com/mifos/vnext-auth/internal/api/errors"
	"github.com/mifos/vnext-auth/internal/audit"
)

// StatusHandler describes the loaded authentication material.
type StatusHandler struct {
	auth Authenticator
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(a Authenticator) *StatusHandler {
	return &StatusHandler{auth: a}
}

// Status handles GET /api/v1/status.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	fp, err := h.auth.Fingerprint()
	if err != nil {
		status, apiErr := apierrors.MapError(err)
		respondError(w, r, status, apiErr)
		return
	}

	resp := dto.StatusResponse{
		Algorithm:    string(h.auth.Algorithm().ID()),
		Fingerprint:  fp,
		Intermediate: certificateInfo(h.auth.IntermediateCertificate()),
		AuditEnabled: audit.Enabled(),
	}
	if c := h.auth.ClientCertificate(); c != nil {
		info := certificateInfo(c)
		resp.Client = &info
	}
	respond(w, r, http.StatusOK, resp)
}
