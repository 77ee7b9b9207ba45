package dto

// AuditEntry represents a single audit event. Signatures and challenges
// are never part of an entry.
type AuditEntry struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	EventType   string `json:"event_type"`
	Result      string `json:"result"`
	Algorithm   string `json:"algorithm,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Reason      string `json:"reason,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
	Path        string `json:"path,omitempty"`
}

// AuditEventsResponse lists recent audit events, oldest first.
type AuditEventsResponse struct {
	Events []AuditEntry `json:"events"`
}

// AuditVerifyResponse represents the result of an audit chain check.
type AuditVerifyResponse struct {
	// Valid indicates if the audit log hash chain is intact.
	Valid bool `json:"valid"`

	// Errors lists verification errors.
	Errors []string `json:"errors,omitempty"`

	// EntryCount is the number of entries verified.
	EntryCount int `json:"entry_count"`

	// FirstEntry is the first entry timestamp.
	FirstEntry string `json:"first_entry,omitempty"`

	// LastEntry is the last entry timestamp.
	LastEntry string `json:"last_entry,omitempty"`

	// LastHash is the hash of the last verified entry.
	LastHash string `json:"last_hash,omitempty"`

	// Failures is the number of entries recording a failed operation.
	Failures int `json:"failures"`
}
