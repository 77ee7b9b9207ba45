package crypto

import (
	"crypto"
	"crypto/dsa" //nolint:staticcheck
	"crypto/ecdsa"
	"fmt"
	"io"
)

// dsaPrimitive signs with FIPS 186 DSA. Signatures are DER encoded
// SEQUENCE { r, s }.
type dsaPrimitive struct {
	desc Descriptor
}

func (p *dsaPrimitive) Descriptor() Descriptor { return p.desc }

// dsaHash truncates the digest to the byte length of the subgroup order,
// which crypto/dsa leaves to the caller.
func (p *dsaPrimitive) dsaHash(params *dsa.Parameters, message []byte) []byte {
	h := p.desc.digest.Sum(message)
	if n := (params.Q.BitLen() + 7) / 8; len(h) > n {
		h = h[:n]
	}
	return h
}

func (p *dsaPrimitive) Sign(random io.Reader, priv crypto.PrivateKey, message []byte) ([]byte, error) {
	key, ok := priv.(*dsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: want DSA private key, got %T", ErrKeyMismatch, priv)
	}
	r, s, err := dsa.Sign(random, key, p.dsaHash(&key.Parameters, message))
	if err != nil {
		return nil, err
	}
	return marshalRS(r, s)
}

func (p *dsaPrimitive) Verify(pub crypto.PublicKey, message, signature []byte) error {
	key, ok := pub.(*dsa.PublicKey)
	if !ok {
		return fmt.Errorf("%w: want DSA public key, got %T", ErrKeyMismatch, pub)
	}
	r, s, err := parseRS(signature)
	if err != nil {
		return err
	}
	if !dsa.Verify(key, p.dsaHash(&key.Parameters, message), r, s) {
		return ErrVerification
	}
	return nil
}

// ecdsaPrimitive signs with ECDSA. crypto/ecdsa truncates the digest to the
// curve order itself, which also covers DigestNone.
type ecdsaPrimitive struct {
	desc Descriptor
}

func (p *ecdsaPrimitive) Descriptor() Descriptor { return p.desc }

func (p *ecdsaPrimitive) Sign(random io.Reader, priv crypto.PrivateKey, message []byte) ([]byte, error) {
	key, ok := priv.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: want EC private key, got %T", ErrKeyMismatch, priv)
	}
	return ecdsa.SignASN1(random, key, p.desc.digest.Sum(message))
}

func (p *ecdsaPrimitive) Verify(pub crypto.PublicKey, message, signature []byte) error {
	key, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return fmt.Errorf("%w: want EC public key, got %T", ErrKeyMismatch, pub)
	}
	if !ecdsa.VerifyASN1(key, p.desc.digest.Sum(message), signature) {
		return ErrVerification
	}
	return nil
}
