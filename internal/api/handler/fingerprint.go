package handler

import (
	"net/http"

	"github.com/mifos/vnext-auth/internal/api/dto"
	apierrors "github.com/mifos/vnext-auth/internal/api/errors"
	"github.com/mifos/vnext-auth/internal/x509util"
)

// FingerprintHandler computes certificate fingerprints.
type FingerprintHandler struct{}

// NewFingerprintHandler creates a new FingerprintHandler.
func NewFingerprintHandler() *FingerprintHandler {
	return &FingerprintHandler{}
}

// Compute handles POST /api/v1/fingerprint.
func (h *FingerprintHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req dto.FingerprintRequest
	if err := decodeRequest(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, apierrors.NewBadRequest(err.Error()))
		return
	}

	data, err := req.Certificate.Decode()
	if err != nil {
		respondError(w, r, http.StatusBadRequest, apierrors.NewBadRequest(err.Error()))
		return
	}
	if len(data) == 0 {
		respondError(w, r, http.StatusBadRequest, apierrors.NewValidationError(
			"certificate is required", map[string]string{"field": "certificate.data"}))
		return
	}

	cert, err := x509util.ParseCertificate(data)
	if err != nil {
		status, apiErr := apierrors.MapError(err)
		respondError(w, r, status, apiErr)
		return
	}

	fp, err := x509util.Fingerprint(cert)
	if err != nil {
		status, apiErr := apierrors.MapError(err)
		respondError(w, r, status, apiErr)
		return
	}
	_, present := cert.ExtensionValue(x509util.OIDExtSubjectKeyId)

	respond(w, r, http.StatusOK, dto.FingerprintResponse{
		Fingerprint: fp,
		Present:     present,
		Certificate: certificateInfo(cert),
	})
}

func certificateInfo(c *x509util.Certificate) dto.CertificateInfo {
	return dto.CertificateInfo{
		Subject: c.Subject(),
		Issuer:  c.Issuer(),
		Serial:  c.SerialNumber(),
		IsCA:    c.IsCA(),
	}
}
