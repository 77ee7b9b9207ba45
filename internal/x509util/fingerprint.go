package x509util

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Fingerprint returns the Subject Key Identifier of cert as lowercase hex.
//
// A certificate without the extension has an empty fingerprint and no
// error. A present but malformed extension is a *FingerprintDecodeError.
// The result depends only on the certificate bytes.
func Fingerprint(cert *Certificate) (string, error) {
	value, ok := cert.ExtensionValue(OIDExtSubjectKeyId)
	if !ok {
		return "", nil
	}
	return FingerprintFromExtension(value)
}

// FingerprintFromExtension decodes a DER extnValue OCTET STRING holding a
// SubjectKeyIdentifier OCTET STRING and returns the key identifier as
// lowercase hex.
func FingerprintFromExtension(value []byte) (string, error) {
	input := cryptobyte.String(value)

	var extnValue cryptobyte.String
	if !input.ReadASN1(&extnValue, cbasn1.OCTET_STRING) || !input.Empty() {
		return "", &FingerprintDecodeError{Layer: "extension value"}
	}

	var keyID cryptobyte.String
	if !extnValue.ReadASN1(&keyID, cbasn1.OCTET_STRING) || !extnValue.Empty() {
		return "", &FingerprintDecodeError{Layer: "key identifier"}
	}

	return hex.EncodeToString(keyID), nil
}

// FingerprintsEqual compares two hex fingerprints ignoring case.
func FingerprintsEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}
