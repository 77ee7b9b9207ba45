package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/mifos/vnext-auth/internal/api/dto"
	apierrors "github.com/mifos/vnext-auth/internal/api/errors"
	"github.com/mifos/vnext-auth/internal/auth"
	"github.com/mifos/vnext-auth/internal/crypto"
	"github.com/mifos/vnext-auth/internal/x509util"
)

// Authenticator is the part of *auth.Authenticator the handlers use.
type Authenticator interface {
	SignContext(ctx context.Context, challenge string) (string, error)
	VerifyContext(ctx context.Context, original string, resp auth.SignedResponse) auth.Outcome
	Fingerprint() (string, error)
	Algorithm() crypto.Descriptor
	ClientCertificate() *x509util.Certificate
	IntermediateCertificate() *x509util.Certificate
}

var _ Authenticator = (*auth.Authenticator)(nil)

// ChallengeHandler handles challenge signing and response verification.
type ChallengeHandler struct {
	auth Authenticator
}

// NewChallengeHandler creates a new ChallengeHandler.
func NewChallengeHandler(a Authenticator) *ChallengeHandler {
	return &ChallengeHandler{auth: a}
}

// Sign handles POST /api/v1/challenge/sign.
func (h *ChallengeHandler) Sign(w http.ResponseWriter, r *http.Request) {
	var req dto.SignRequest
	if err := decodeRequest(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, apierrors.NewBadRequest(err.Error()))
		return
	}
	if req.Challenge == "" {
		respondError(w, r, http.StatusBadRequest, apierrors.NewValidationError(
			"challenge is required", map[string]string{"field": "challenge"}))
		return
	}

	sig, err := h.auth.SignContext(r.Context(), req.Challenge)
	if err != nil {
		status, apiErr := apierrors.MapError(err)
		respondError(w, r, status, apiErr)
		return
	}

	respond(w, r, http.StatusOK, dto.SignResponse{
		Signature: sig,
		Algorithm: string(h.auth.Algorithm().ID()),
	})
}

// Verify handles POST /api/v1/challenge/verify. A rejected response is a
// successful request with verified=false.
func (h *ChallengeHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyRequest
	if err := decodeRequest(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, apierrors.NewBadRequest(err.Error()))
		return
	}

	var missing []string
	if req.Signature == "" {
		missing = append(missing, "signedClientId")
	}
	if req.Fingerprint == nil {
		missing = append(missing, "pubKeyFingerprint")
	}
	if len(missing) > 0 {
		respondError(w, r, http.StatusBadRequest, apierrors.NewValidationError(
			"missing required fields", map[string]string{"fields": strings.Join(missing, ",")}))
		return
	}

	out := h.auth.VerifyContext(r.Context(), req.Original, auth.SignedResponse{
		Nonce:       req.Nonce,
		Signature:   req.Signature,
		Fingerprint: *req.Fingerprint,
	})

	respond(w, r, http.StatusOK, dto.VerifyResponse{
		Verified: out.Verified,
		Reason:   string(out.Reason),
		Detail:   out.Detail,
	})
}
