// Package x509util loads X.509 certificates and derives the identity
// fingerprint the payment hub uses to bind a response to its signing CA.
package x509util

import (
	"encoding/asn1"
)

// Standard X.509 extension OIDs.
var (
	// Subject Key Identifier extension
	OIDExtSubjectKeyId = asn1.ObjectIdentifier{2, 5, 29, 14}

	// Authority Key Identifier extension
	OIDExtAuthorityKeyId = asn1.ObjectIdentifier{2, 5, 29, 35}

	// Basic Constraints extension
	OIDExtBasicConstraints = asn1.ObjectIdentifier{2, 5, 29, 19}
)
