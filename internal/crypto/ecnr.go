package crypto

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ecnrPrimitive signs with the elliptic curve Nyberg-Rueppel scheme
// (IEEE 1363 ECSP-NR / ECVP-NR):
//
//	e = H(m) as an integer, with bitlen(e) <= bitlen(n)
//	r = (x(kG) + e) mod n, r != 0
//	s = (k - r*d) mod n
//
// and verification recovers e as (r - x(sG + rQ)) mod n. Signatures are
// DER encoded SEQUENCE { r, s }.
//
// Point arithmetic goes through the deprecated crypto/elliptic API.
type ecnrPrimitive struct {
	desc Descriptor
}

var errECNRInputTooLarge = errors.New("digest too large for ECNR key")

func (p *ecnrPrimitive) Descriptor() Descriptor { return p.desc }

func (p *ecnrPrimitive) Sign(random io.Reader, priv crypto.PrivateKey, message []byte) ([]byte, error) {
	key, ok := priv.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: want EC private key, got %T", ErrKeyMismatch, priv)
	}
	curve := key.Curve
	n := curve.Params().N

	e := new(big.Int).SetBytes(p.desc.digest.Sum(message))
	if e.BitLen() > n.BitLen() {
		return nil, errECNRInputTooLarge
	}

	nMinusOne := new(big.Int).Sub(n, big.NewInt(1))
	r := new(big.Int)
	var k *big.Int
	for r.Sign() == 0 {
		var err error
		k, err = rand.Int(random, nMinusOne)
		if err != nil {
			return nil, fmt.Errorf("failed to generate nonce: %w", err)
		}
		k.Add(k, big.NewInt(1))

		x, _ := curve.ScalarBaseMult(k.Bytes()) //nolint:staticcheck
		r.Add(x, e)
		r.Mod(r, n)
	}

	s := new(big.Int).Mul(r, key.D)
	s.Sub(k, s)
	s.Mod(s, n)

	return marshalRS(r, s)
}

func (p *ecnrPrimitive) Verify(pub crypto.PublicKey, message, signature []byte) error {
	key, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return fmt.Errorf("%w: want EC public key, got %T", ErrKeyMismatch, pub)
	}
	curve := key.Curve
	n := curve.Params().N

	e := new(big.Int).SetBytes(p.desc.digest.Sum(message))
	if e.BitLen() > n.BitLen() {
		return errECNRInputTooLarge
	}

	r, s, err := parseRS(signature)
	if err != nil {
		return err
	}
	if r.Sign() <= 0 || r.Cmp(n) >= 0 || s.Sign() < 0 || s.Cmp(n) >= 0 {
		return ErrVerification
	}

	x1, y1 := curve.ScalarBaseMult(s.Bytes())           //nolint:staticcheck
	x2, y2 := curve.ScalarMult(key.X, key.Y, r.Bytes()) //nolint:staticcheck
	x, y := curve.Add(x1, y1, x2, y2)                   //nolint:staticcheck
	if x.Sign() == 0 && y.Sign() == 0 {
		return ErrVerification
	}

	t := new(big.Int).Sub(r, x)
	t.Mod(t, n)
	if t.Cmp(e) != 0 {
		return ErrVerification
	}
	return nil
}
