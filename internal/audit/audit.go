package audit

import (
	"fmt"
	"sync"
)

var (
	// globalWriter is the process-wide audit writer.
	globalWriter Writer = NopWriter{}
	globalMu     sync.RWMutex

	enabled bool
)

// Init installs w as the process-wide audit writer. A nil writer disables
// auditing.
func Init(w Writer) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if w == nil {
		globalWriter = NopWriter{}
		enabled = false
		return nil
	}

	globalWriter = w
	enabled = true
	return nil
}

// InitFile installs a hash-chained FileWriter at path. An empty path
// disables auditing.
func InitFile(path string) error {
	if path == "" {
		return Init(nil)
	}

	w, err := NewFileWriter(path)
	if err != nil {
		return err
	}
	return Init(w)
}

// Close closes the process-wide writer and disables auditing.
func Close() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	err := globalWriter.Close()
	globalWriter = NopWriter{}
	enabled = false
	return err
}

// Enabled returns whether audit logging is active.
func Enabled() bool {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return enabled
}

// Log writes event to the process-wide writer.
func Log(event *Event) error {
	globalMu.RLock()
	w := globalWriter
	globalMu.RUnlock()

	return w.Write(event)
}

// MustLog writes event and wraps any failure so that the calling operation
// can fail with it. An operation whose audit record cannot be written must
// not report success.
func MustLog(event *Event) error {
	if err := Log(event); err != nil {
		return fmt.Errorf("audit log failed: %w", err)
	}
	return nil
}

func resultOf(success bool) Result {
	if success {
		return ResultSuccess
	}
	return ResultFailure
}

// LogKeyLoaded records loading of the client private key.
func LogKeyLoaded(path, family string, success bool, reason string) error {
	event := NewEvent(EventKeyLoaded, resultOf(success)).
		WithObject(Object{
			Type: "key",
			Path: path,
		}).
		WithContext(Context{
			Algorithm: family,
			Reason:    reason,
		})

	return MustLog(event)
}

// LogCertLoaded records loading of a certificate.
func LogCertLoaded(path, subject, serial string, success bool, reason string) error {
	event := NewEvent(EventCertLoaded, resultOf(success)).
		WithObject(Object{
			Type:    "certificate",
			Path:    path,
			Serial:  serial,
			Subject: subject,
		}).
		WithContext(Context{
			Reason: reason,
		})

	return MustLog(event)
}

// LogChallengeSigned records a challenge signing attempt. The challenge and
// the signature are never logged.
func LogChallengeSigned(algorithm, requestID string, success bool, reason string) error {
	event := NewEvent(EventChallengeSigned, resultOf(success)).
		WithObject(Object{Type: "challenge"}).
		WithContext(Context{
			Algorithm: algorithm,
			Reason:    reason,
			RequestID: requestID,
		})

	return MustLog(event)
}

// LogResponseVerified records a successfully verified hub response.
func LogResponseVerified(algorithm, fingerprint, requestID string) error {
	event := NewEvent(EventResponseVerified, ResultSuccess).
		WithObject(Object{Type: "response"}).
		WithContext(Context{
			Algorithm:   algorithm,
			Fingerprint: fingerprint,
			RequestID:   requestID,
			Verified:    true,
		})

	return MustLog(event)
}

// LogAuthFailed records a response that failed verification.
func LogAuthFailed(algorithm, fingerprint, reason, requestID string) error {
	event := NewEvent(EventAuthFailed, ResultFailure).
		WithObject(Object{Type: "response"}).
		WithContext(Context{
			Algorithm:   algorithm,
			Fingerprint: fingerprint,
			Reason:      reason,
			RequestID:   requestID,
		})

	return MustLog(event)
}
