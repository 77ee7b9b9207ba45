package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mifos/vnext-auth/internal/api/dto"
	apierrors "github.com/mifos/vnext-auth/internal/api/errors"
	"github.com/mifos/vnext-auth/internal/crypto"
)

// AlgorithmHandler exposes the signature algorithm registry.
type AlgorithmHandler struct{}

// NewAlgorithmHandler creates a new AlgorithmHandler.
func NewAlgorithmHandler() *AlgorithmHandler {
	return &AlgorithmHandler{}
}

// List handles GET /api/v1/algorithms.
func (h *AlgorithmHandler) List(w http.ResponseWriter, r *http.Request) {
	descs := crypto.Algorithms()
	resp := dto.AlgorithmListResponse{
		Algorithms: make([]dto.AlgorithmInfo, 0, len(descs)),
	}
	for _, d := range descs {
		resp.Algorithms = append(resp.Algorithms, algorithmInfo(d, false))
	}
	for _, id := range crypto.UnsupportedAlgorithms() {
		resp.Unsupported = append(resp.Unsupported, string(id))
	}
	respond(w, r, http.StatusOK, resp)
}

// Get handles GET /api/v1/algorithms/{name}. The name may be any alias or
// dotted OID; names containing a slash are matched as well.
func (h *AlgorithmHandler) Get(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil || name == "" {
		respondError(w, r, http.StatusBadRequest, apierrors.NewBadRequest("invalid algorithm name"))
		return
	}

	d, err := crypto.ResolveAlgorithm(name)
	if err != nil {
		status, apiErr := apierrors.MapError(err)
		respondError(w, r, status, apiErr)
		return
	}
	respond(w, r, http.StatusOK, algorithmInfo(d, true))
}

func algorithmInfo(d crypto.Descriptor, withAliases bool) dto.AlgorithmInfo {
	info := dto.AlgorithmInfo{
		ID:          string(d.ID()),
		Scheme:      d.Scheme().String(),
		Digest:      d.Digest().String(),
		Description: d.Description(),
	}
	if oid := d.OID(); len(oid) > 0 {
		info.OID = oid.String()
	}
	if withAliases {
		info.Aliases = crypto.Aliases(d.ID())
	}
	return info
}
