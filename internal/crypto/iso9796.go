package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// iso9796d2Primitive signs with ISO/IEC 9796-2 scheme 1 and the implicit
// trailer 0xBC. As much of the
// message as fits is embedded in the signature block (partial recovery when
// it does not fit entirely); the block is then run through raw RSA.
//
// Block layout, k = modulus length in bytes:
//
//	header | padding 0xbb..0xba | message prefix | H(m) | 0xbc
//
// The header nibble is 0x4 for total recovery and 0x6 for partial
// recovery. Verification re-encodes the message and compares blocks.
type iso9796d2Primitive struct {
	desc Descriptor
}

const iso9796TrailerImplicit = 0xbc

var errISO9796KeyTooSmall = errors.New("RSA key too small for ISO 9796-2 digest")

func (p *iso9796d2Primitive) Descriptor() Descriptor { return p.desc }

// encode builds the message representative for a modulus of keyBits bits.
func (p *iso9796d2Primitive) encode(keyBits int, message []byte) ([]byte, error) {
	k := (keyBits + 7) / 8
	digSize := p.desc.digest.Size()
	capacity := k - digSize - 2
	if capacity < 0 {
		return nil, errISO9796KeyTooSmall
	}

	block := make([]byte, k)
	delta := k - digSize - 1
	copy(block[delta:], p.desc.digest.Sum(message))
	block[k-1] = iso9796TrailerImplicit

	var header byte
	x := (digSize+len(message))*8 + 8 + 4 - keyBits
	if x > 0 {
		mR := len(message) - (x+7)/8
		if mR < 0 || mR > capacity {
			return nil, errISO9796KeyTooSmall
		}
		header = 0x60
		delta -= mR
		copy(block[delta:], message[:mR])
	} else {
		header = 0x40
		delta -= len(message)
		copy(block[delta:], message)
	}
	if delta < 1 {
		return nil, errISO9796KeyTooSmall
	}

	if delta-1 > 0 {
		for i := delta - 1; i > 0; i-- {
			block[i] = 0xbb
		}
		block[delta-1] ^= 0x01
		block[0] = 0x0b | header
	} else {
		block[0] = 0x0a | header
	}
	return block, nil
}

func (p *iso9796d2Primitive) Sign(random io.Reader, priv crypto.PrivateKey, message []byte) ([]byte, error) {
	key, err := rsaPrivateKey(priv)
	if err != nil {
		return nil, err
	}
	block, err := p.encode(key.N.BitLen(), message)
	if err != nil {
		return nil, err
	}
	m := new(big.Int).SetBytes(block)
	if m.Cmp(key.N) >= 0 {
		return nil, errors.New("ISO 9796-2 block too large for RSA modulus")
	}
	s, err := rsaRawSign(random, key, m)
	if err != nil {
		return nil, err
	}
	return s.FillBytes(make([]byte, len(block))), nil
}

func (p *iso9796d2Primitive) Verify(pub crypto.PublicKey, message, signature []byte) error {
	key, err := rsaPublicKey(pub)
	if err != nil {
		return err
	}
	expected, err := p.encode(key.N.BitLen(), message)
	if err != nil {
		return err
	}
	if len(signature) != len(expected) {
		return ErrVerification
	}
	s := new(big.Int).SetBytes(signature)
	if s.Cmp(key.N) >= 0 {
		return ErrVerification
	}
	m := new(big.Int).Exp(s, big.NewInt(int64(key.E)), key.N)
	if m.BitLen() > len(expected)*8 {
		return ErrVerification
	}
	if subtle.ConstantTimeCompare(m.FillBytes(make([]byte, len(expected))), expected) != 1 {
		return ErrVerification
	}
	return nil
}

// rsaRawSign computes m^d mod n with blinding and checks the result
// against the public exponent. crypto/rsa offers no unpadded private-key
// operation.
func rsaRawSign(random io.Reader, key *rsa.PrivateKey, m *big.Int) (*big.Int, error) {
	n := key.N
	e := big.NewInt(int64(key.E))

	var r, rInv *big.Int
	for {
		var err error
		r, err = rand.Int(random, n)
		if err != nil {
			return nil, fmt.Errorf("failed to generate blinding factor: %w", err)
		}
		if r.Sign() == 0 {
			continue
		}
		rInv = new(big.Int).ModInverse(r, n)
		if rInv != nil {
			break
		}
	}

	blinded := new(big.Int).Exp(r, e, n)
	blinded.Mul(blinded, m)
	blinded.Mod(blinded, n)

	s := new(big.Int).Exp(blinded, key.D, n)
	s.Mul(s, rInv)
	s.Mod(s, n)

	if new(big.Int).Exp(s, e, n).Cmp(m) != 0 {
		return nil, errors.New("RSA signature self-check failed")
	}
	return s, nil
}
