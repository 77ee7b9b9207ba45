package crypto

import (
	"crypto"
	"crypto/rsa"
	"errors"
	"fmt"
	"io"
)

func rsaPrivateKey(priv crypto.PrivateKey) (*rsa.PrivateKey, error) {
	k, ok := priv.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: want RSA private key, got %T", ErrKeyMismatch, priv)
	}
	return k, nil
}

func rsaPublicKey(pub crypto.PublicKey) (*rsa.PublicKey, error) {
	k, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: want RSA public key, got %T", ErrKeyMismatch, pub)
	}
	return k, nil
}

// pkcs1v15Primitive signs with RSASSA-PKCS1-v1_5. The DigestInfo is built
// here rather than by crypto/rsa so that digests the standard library does
// not know (MD2, MD4, RIPEMD) can be used. With DigestNone the message must
// already be a DigestInfo and is padded and signed as given.
type pkcs1v15Primitive struct {
	desc Descriptor
}

func (p *pkcs1v15Primitive) Descriptor() Descriptor { return p.desc }

func (p *pkcs1v15Primitive) Sign(random io.Reader, priv crypto.PrivateKey, message []byte) ([]byte, error) {
	key, err := rsaPrivateKey(priv)
	if err != nil {
		return nil, err
	}
	if p.desc.digest == DigestNone {
		if err := checkDigestInfo(message); err != nil {
			return nil, err
		}
	}
	encoded, err := p.desc.digest.encodeDigestInfo(message)
	if err != nil {
		return nil, fmt.Errorf("failed to encode digest: %w", err)
	}
	return rsa.SignPKCS1v15(random, key, 0, encoded)
}

func (p *pkcs1v15Primitive) Verify(pub crypto.PublicKey, message, signature []byte) error {
	key, err := rsaPublicKey(pub)
	if err != nil {
		return err
	}
	if p.desc.digest == DigestNone {
		if err := checkDigestInfo(message); err != nil {
			return errors.Join(ErrVerification, err)
		}
	}
	encoded, err := p.desc.digest.encodeDigestInfo(message)
	if err != nil {
		return fmt.Errorf("failed to encode digest: %w", err)
	}
	if err := rsa.VerifyPKCS1v15(key, 0, encoded, signature); err != nil {
		return errors.Join(ErrVerification, err)
	}
	return nil
}

// pssPrimitive signs with RSASSA-PSS, MGF1 over the message digest and a
// salt as long as the digest.
type pssPrimitive struct {
	desc Descriptor
}

func (p *pssPrimitive) Descriptor() Descriptor { return p.desc }

func (p *pssPrimitive) options() *rsa.PSSOptions {
	return &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       p.desc.digest.cryptoHash(),
	}
}

func (p *pssPrimitive) Sign(random io.Reader, priv crypto.PrivateKey, message []byte) ([]byte, error) {
	key, err := rsaPrivateKey(priv)
	if err != nil {
		return nil, err
	}
	return rsa.SignPSS(random, key, p.desc.digest.cryptoHash(), p.desc.digest.Sum(message), p.options())
}

func (p *pssPrimitive) Verify(pub crypto.PublicKey, message, signature []byte) error {
	key, err := rsaPublicKey(pub)
	if err != nil {
		return err
	}
	if err := rsa.VerifyPSS(key, p.desc.digest.cryptoHash(), p.desc.digest.Sum(message), signature, p.options()); err != nil {
		return errors.Join(ErrVerification, err)
	}
	return nil
}
