package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/mifos/vnext-auth/internal/api/dto"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCBOR = "application/cbor"

	// maxBodySize bounds request bodies; challenges and certificates are small.
	maxBodySize = 1 << 20
)

func isCBOR(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == contentTypeCBOR
}

// wantsCBOR reports whether the client asked for a CBOR response.
func wantsCBOR(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		if isCBOR(strings.TrimSpace(part)) {
			return true
		}
	}
	return false
}

// decodeRequest reads a JSON or CBOR body into v, depending on Content-Type.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if len(body) == 0 {
		return fmt.Errorf("request body is empty")
	}

	if isCBOR(r.Header.Get("Content-Type")) {
		if err := cbor.Unmarshal(body, v); err != nil {
			return fmt.Errorf("invalid CBOR request body: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("invalid JSON request body: %w", err)
	}
	return nil
}

// respond writes data as CBOR if the client accepts it, JSON otherwise.
func respond(w http.ResponseWriter, r *http.Request, status int, data any) {
	if wantsCBOR(r) {
		body, err := cbor.Marshal(data)
		if err != nil {
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentTypeCBOR)
		w.WriteHeader(status)
		_, _ = w.Write(body)
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, r *http.Request, status int, apiErr *dto.APIError) {
	respond(w, r, status, apiErr)
}
