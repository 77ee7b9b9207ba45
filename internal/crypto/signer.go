package crypto

import (
	"crypto"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Primitive is the signer/verifier of one canonical algorithm: a digest
// paired with a signature scheme.
type Primitive interface {
	// Descriptor returns the algorithm this primitive implements.
	Descriptor() Descriptor

	// Sign hashes message with the algorithm digest and signs the result.
	Sign(random io.Reader, priv crypto.PrivateKey, message []byte) ([]byte, error)

	// Verify returns nil if signature is a valid signature of message under
	// pub, ErrVerification if it is not, or another error if the key or
	// encoding is unusable.
	Verify(pub crypto.PublicKey, message, signature []byte) error
}

// NewPrimitive builds the signer/verifier for d.
func NewPrimitive(d Descriptor) (Primitive, error) {
	switch d.scheme {
	case SchemeRSAPKCS1v15:
		return &pkcs1v15Primitive{desc: d}, nil
	case SchemeRSAPSS:
		if d.digest.cryptoHash() == 0 {
			return nil, fmt.Errorf("RSASSA-PSS requires a standard digest, got %s", d.digest)
		}
		return &pssPrimitive{desc: d}, nil
	case SchemeDSA:
		return &dsaPrimitive{desc: d}, nil
	case SchemeECDSA:
		return &ecdsaPrimitive{desc: d}, nil
	case SchemeECNR:
		return &ecnrPrimitive{desc: d}, nil
	case SchemeISO9796d2:
		return &iso9796d2Primitive{desc: d}, nil
	case SchemeUnknown:
		return nil, &UnknownAlgorithmError{Name: string(d.id)}
	}
	return nil, &UnknownAlgorithmError{Name: string(d.id)}
}

// Verifier binds a Primitive to a public key.
type Verifier struct {
	primitive Primitive
	pub       crypto.PublicKey
}

// NewVerifier returns a Verifier checking signatures made with d under pub.
func NewVerifier(d Descriptor, pub crypto.PublicKey) (*Verifier, error) {
	p, err := NewPrimitive(d)
	if err != nil {
		return nil, err
	}
	return &Verifier{primitive: p, pub: pub}, nil
}

// Verify reports whether signature is valid for message.
func (v *Verifier) Verify(message, signature []byte) bool {
	return v.primitive.Verify(v.pub, message, signature) == nil
}

// Algorithm returns the algorithm used for verification.
func (v *Verifier) Algorithm() Descriptor {
	return v.primitive.Descriptor()
}

// marshalRS encodes a DSA-style signature as SEQUENCE { r INTEGER, s INTEGER }.
func marshalRS(r, s *big.Int) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(r)
		b.AddASN1BigInt(s)
	})
	return b.Bytes()
}

// parseRS decodes SEQUENCE { r INTEGER, s INTEGER }.
func parseRS(sig []byte) (r, s *big.Int, err error) {
	input := cryptobyte.String(sig)
	var inner cryptobyte.String
	r, s = new(big.Int), new(big.Int)
	if !input.ReadASN1(&inner, cbasn1.SEQUENCE) || !input.Empty() ||
		!inner.ReadASN1Integer(r) ||
		!inner.ReadASN1Integer(s) ||
		!inner.Empty() {
		return nil, nil, fmt.Errorf("malformed signature encoding")
	}
	return r, s, nil
}
