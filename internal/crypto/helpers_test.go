package crypto

import (
	"crypto/dsa" //nolint:staticcheck
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"encoding/asn1"
	"encoding/pem"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Key generation is slow (DSA parameters in particular), so every test in
// the package shares one key per family.
var (
	keysOnce sync.Once
	rsaKey   *rsa.PrivateKey
	dsaKey   *dsa.PrivateKey
	p256Key  *ecdsa.PrivateKey
	p384Key  *ecdsa.PrivateKey
	p521Key  *ecdsa.PrivateKey
	keysErr  error
)

func testKeys(t *testing.T) {
	t.Helper()
	keysOnce.Do(func() {
		if rsaKey, keysErr = rsa.GenerateKey(rand.Reader, 2048); keysErr != nil {
			return
		}
		dsaKey = new(dsa.PrivateKey)
		if keysErr = dsa.GenerateParameters(&dsaKey.Parameters, rand.Reader, dsa.L1024N160); keysErr != nil {
			return
		}
		if keysErr = dsa.GenerateKey(dsaKey, rand.Reader); keysErr != nil {
			return
		}
		if p256Key, keysErr = ecdsa.GenerateKey(elliptic.P256(), rand.Reader); keysErr != nil {
			return
		}
		if p384Key, keysErr = ecdsa.GenerateKey(elliptic.P384(), rand.Reader); keysErr != nil {
			return
		}
		p521Key, keysErr = ecdsa.GenerateKey(elliptic.P521(), rand.Reader)
	})
	require.NoError(t, keysErr)
}

// keyFor returns a private key usable with d. ECNR needs a curve order at
// least as long as the digest.
func keyFor(t *testing.T, d Descriptor) (priv any, pub any) {
	t.Helper()
	testKeys(t)
	switch d.Scheme().KeyFamily() {
	case KeyFamilyRSA:
		return rsaKey, &rsaKey.PublicKey
	case KeyFamilyDSA:
		return dsaKey, &dsaKey.PublicKey
	case KeyFamilyEC:
		if d.Scheme() == SchemeECNR {
			switch d.Digest() {
			case DigestSHA384:
				return p384Key, &p384Key.PublicKey
			case DigestSHA512:
				return p521Key, &p521Key.PublicKey
			}
		}
		return p256Key, &p256Key.PublicKey
	}
	t.Fatalf("no key for %s", d)
	return nil, nil
}

// marshalDSAPKCS8 encodes a DSA private key as PKCS#8, which crypto/x509
// cannot do.
// sha256DigestInfo returns the DER DigestInfo over SHA-256(message).
func sha256DigestInfo(t *testing.T, message []byte) []byte {
	t.Helper()
	info, err := DigestSHA256.encodeDigestInfo(message)
	require.NoError(t, err)
	return info
}

func marshalDSAPKCS8(t *testing.T, key *dsa.PrivateKey) []byte {
	t.Helper()
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(asn1.ObjectIdentifier{1, 2, 840, 10040, 4, 1})
			b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1BigInt(key.P)
				b.AddASN1BigInt(key.Q)
				b.AddASN1BigInt(key.G)
			})
		})
		b.AddASN1(cbasn1.OCTET_STRING, func(b *cryptobyte.Builder) {
			b.AddASN1BigInt(key.X)
		})
	})
	der, err := b.Bytes()
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
}
