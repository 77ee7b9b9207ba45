package crypto

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// =============================================================================
// [Unit] Sign / Verify round trips
// =============================================================================

func TestU_Primitive_RoundTripAllAlgorithms(t *testing.T) {
	message := []byte("abc123")
	tampered := []byte("abc124")

	for _, d := range Algorithms() {
		t.Run("[Unit] RoundTrip: "+d.String(), func(t *testing.T) {
			priv, pub := keyFor(t, d)
			p, err := NewPrimitive(d)
			require.NoError(t, err)

			message, tampered := message, tampered
			if d.ID() == AlgNONEwithRSA {
				message = sha256DigestInfo(t, message)
				tampered = sha256DigestInfo(t, tampered)
			}

			sig, err := p.Sign(rand.Reader, priv, message)
			require.NoError(t, err)
			require.NotEmpty(t, sig)

			require.NoError(t, p.Verify(pub, message, sig))
			require.ErrorIs(t, p.Verify(pub, tampered, sig), ErrVerification)

			flipped := bytes.Clone(sig)
			flipped[len(flipped)/2] ^= 0x01
			require.Error(t, p.Verify(pub, message, flipped))
		})
	}
}

func TestU_Primitive_KeyMismatch(t *testing.T) {
	testKeys(t)

	rsaPrim, err := NewPrimitive(MustResolveAlgorithm("SHA256WITHRSA"))
	require.NoError(t, err)
	_, err = rsaPrim.Sign(rand.Reader, p256Key, []byte("x"))
	require.ErrorIs(t, err, ErrKeyMismatch)
	require.ErrorIs(t, rsaPrim.Verify(&dsaKey.PublicKey, []byte("x"), []byte("sig")), ErrKeyMismatch)

	ecPrim, err := NewPrimitive(MustResolveAlgorithm("SHA256WITHECDSA"))
	require.NoError(t, err)
	_, err = ecPrim.Sign(rand.Reader, rsaKey, []byte("x"))
	require.ErrorIs(t, err, ErrKeyMismatch)

	dsaPrim, err := NewPrimitive(MustResolveAlgorithm("SHA1WITHDSA"))
	require.NoError(t, err)
	_, err = dsaPrim.Sign(rand.Reader, rsaKey, []byte("x"))
	require.ErrorIs(t, err, ErrKeyMismatch)
}

func TestU_Primitive_MalformedRSSignature(t *testing.T) {
	testKeys(t)
	for _, name := range []string{"SHA1WITHDSA", "SHA256WITHECNR"} {
		d := MustResolveAlgorithm(name)
		_, pub := keyFor(t, d)
		p, err := NewPrimitive(d)
		require.NoError(t, err)
		err = p.Verify(pub, []byte("abc"), []byte{0x30, 0x03, 0x02, 0x01})
		require.Error(t, err, name)
		require.False(t, errors.Is(err, ErrKeyMismatch))
	}
}

// =============================================================================
// [Unit] RSA PKCS#1 v1.5
// =============================================================================

func TestU_PKCS1v15_MatchesStandardLibrary(t *testing.T) {
	testKeys(t)
	message := []byte("abc123")

	sha1Sum := sha1.Sum(message)
	sha256Sum := sha256.Sum256(message)

	tests := []struct {
		name   string
		alg    string
		hash   crypto.Hash
		hashed []byte
	}{
		{"[Unit] PKCS1v15: SHA-1", "SHA1WITHRSA", crypto.SHA1, sha1Sum[:]},
		{"[Unit] PKCS1v15: SHA-256", "SHA256WITHRSA", crypto.SHA256, sha256Sum[:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := rsa.SignPKCS1v15(nil, rsaKey, tt.hash, tt.hashed)
			require.NoError(t, err)

			p, err := NewPrimitive(MustResolveAlgorithm(tt.alg))
			require.NoError(t, err)
			got, err := p.Sign(rand.Reader, rsaKey, message)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestU_PKCS1v15_AliasesSignIdentically(t *testing.T) {
	testKeys(t)
	message := []byte("abc123")

	var sigs [][]byte
	for _, name := range []string{"SHA256WITHRSA", "SHA-256WITHRSA", "1.2.840.113549.1.1.11"} {
		p, err := NewPrimitive(MustResolveAlgorithm(name))
		require.NoError(t, err)
		sig, err := p.Sign(rand.Reader, rsaKey, message)
		require.NoError(t, err)
		sigs = append(sigs, sig)
	}
	require.Equal(t, sigs[0], sigs[1])
	require.Equal(t, sigs[0], sigs[2])
}

func TestU_PKCS1v15_NoDigestRejectsOversizedInput(t *testing.T) {
	testKeys(t)
	p, err := NewPrimitive(MustResolveAlgorithm("NONEWITHRSA"))
	require.NoError(t, err)

	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(DigestSHA256.OID())
			b.AddASN1NULL()
		})
		b.AddASN1OctetString(make([]byte, rsaKey.Size()))
	})
	oversized, err := b.Bytes()
	require.NoError(t, err)

	_, err = p.Sign(rand.Reader, rsaKey, oversized)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotDigestInfo)
}

func TestU_PKCS1v15_NoDigestRequiresDigestInfo(t *testing.T) {
	testKeys(t)
	p, err := NewPrimitive(MustResolveAlgorithm("NONEWITHRSA"))
	require.NoError(t, err)

	info := sha256DigestInfo(t, []byte("abc123"))

	t.Run("[Unit] Sign: DigestInfo matches SHA-256withRSA", func(t *testing.T) {
		sig, err := p.Sign(rand.Reader, rsaKey, info)
		require.NoError(t, err)
		require.NoError(t, p.Verify(&rsaKey.PublicKey, info, sig))

		hashed, err := NewPrimitive(MustResolveAlgorithm("SHA256WITHRSA"))
		require.NoError(t, err)
		require.NoError(t, hashed.Verify(&rsaKey.PublicKey, []byte("abc123"), sig))
	})

	tests := []struct {
		name    string
		message []byte
	}{
		{"[Unit] Sign: raw challenge", []byte("abc123")},
		{"[Unit] Sign: empty", nil},
		{"[Unit] Sign: trailing data", append(bytes.Clone(info), 0x00)},
		{"[Unit] Sign: missing digest", []byte{0x30, 0x07, 0x30, 0x05, 0x06, 0x03, 0x2a, 0x03, 0x04}},
		{"[Unit] Sign: algorithm not a SEQUENCE", []byte{0x30, 0x04, 0x05, 0x00, 0x04, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Sign(rand.Reader, rsaKey, tt.message)
			require.ErrorIs(t, err, ErrNotDigestInfo)
		})
	}

	t.Run("[Unit] Verify: raw challenge fails verification", func(t *testing.T) {
		sig, err := p.Sign(rand.Reader, rsaKey, info)
		require.NoError(t, err)
		err = p.Verify(&rsaKey.PublicKey, []byte("abc123"), sig)
		require.ErrorIs(t, err, ErrVerification)
		require.ErrorIs(t, err, ErrNotDigestInfo)
	})
}

// =============================================================================
// [Unit] ISO 9796-2
// =============================================================================

// recoverBlock applies the public RSA operation to an ISO 9796-2 signature.
func recoverBlock(pub *rsa.PublicKey, sig []byte) []byte {
	s := new(big.Int).SetBytes(sig)
	m := new(big.Int).Exp(s, big.NewInt(int64(pub.E)), pub.N)
	return m.FillBytes(make([]byte, pub.Size()))
}

func TestU_ISO9796d2_TotalRecovery(t *testing.T) {
	testKeys(t)
	p, err := NewPrimitive(MustResolveAlgorithm("SHA1WITHRSA/ISO9796-2"))
	require.NoError(t, err)

	message := []byte("abc123")
	sig, err := p.Sign(rand.Reader, rsaKey, message)
	require.NoError(t, err)
	require.Len(t, sig, rsaKey.Size())

	block := recoverBlock(&rsaKey.PublicKey, sig)
	require.Equal(t, byte(0x4b), block[0])
	require.Equal(t, byte(0xbc), block[len(block)-1])

	sum := sha1.Sum(message)
	require.Equal(t, sum[:], block[len(block)-1-len(sum):len(block)-1])
	require.Equal(t, message, block[len(block)-1-len(sum)-len(message):len(block)-1-len(sum)])
}

func TestU_ISO9796d2_PartialRecovery(t *testing.T) {
	testKeys(t)
	p, err := NewPrimitive(MustResolveAlgorithm("SHA1WITHRSA/ISO9796-2"))
	require.NoError(t, err)

	message := bytes.Repeat([]byte("0123456789"), 40)
	sig, err := p.Sign(rand.Reader, rsaKey, message)
	require.NoError(t, err)
	require.NoError(t, p.Verify(&rsaKey.PublicKey, message, sig))

	block := recoverBlock(&rsaKey.PublicKey, sig)
	require.Equal(t, byte(0x6a), block[0])
	require.Equal(t, message[:rsaKey.Size()-sha1.Size-2], block[1:rsaKey.Size()-sha1.Size-1])

	// The unrecovered tail is still bound by the digest.
	tampered := bytes.Clone(message)
	tampered[len(tampered)-1] ^= 0x01
	require.ErrorIs(t, p.Verify(&rsaKey.PublicKey, tampered, sig), ErrVerification)
}

func TestU_ISO9796d2_RejectsWrongLength(t *testing.T) {
	testKeys(t)
	p, err := NewPrimitive(MustResolveAlgorithm("MD5WITHRSA/ISO9796-2"))
	require.NoError(t, err)
	sig, err := p.Sign(rand.Reader, rsaKey, []byte("abc"))
	require.NoError(t, err)
	require.ErrorIs(t, p.Verify(&rsaKey.PublicKey, []byte("abc"), sig[1:]), ErrVerification)
}

// =============================================================================
// [Unit] ECNR
// =============================================================================

func TestU_ECNR_DigestLargerThanCurve(t *testing.T) {
	testKeys(t)
	p, err := NewPrimitive(MustResolveAlgorithm("SHA512WITHECNR"))
	require.NoError(t, err)
	_, err = p.Sign(rand.Reader, p256Key, []byte("abc"))
	require.ErrorIs(t, err, errECNRInputTooLarge)
}

func TestU_ECNR_RejectsOutOfRangeValues(t *testing.T) {
	testKeys(t)
	p, err := NewPrimitive(MustResolveAlgorithm("SHA256WITHECNR"))
	require.NoError(t, err)

	n := p256Key.Curve.Params().N
	zeroR, err := marshalRS(big.NewInt(0), big.NewInt(1))
	require.NoError(t, err)
	require.ErrorIs(t, p.Verify(&p256Key.PublicKey, []byte("abc"), zeroR), ErrVerification)

	bigS, err := marshalRS(big.NewInt(1), n)
	require.NoError(t, err)
	require.ErrorIs(t, p.Verify(&p256Key.PublicKey, []byte("abc"), bigS), ErrVerification)
}

// =============================================================================
// [Unit] Verifier
// =============================================================================

func TestU_Verifier_BindsPublicKey(t *testing.T) {
	testKeys(t)
	d := MustResolveAlgorithm("SHA256WITHECDSA")
	v, err := NewVerifier(d, &p256Key.PublicKey)
	require.NoError(t, err)
	require.Equal(t, d, v.Algorithm())

	km, err := NewKeyMaterial(p256Key)
	require.NoError(t, err)
	p, err := NewPrimitive(d)
	require.NoError(t, err)
	sig, err := km.Sign(rand.Reader, p, []byte("nonce"))
	require.NoError(t, err)

	require.True(t, v.Verify([]byte("nonce"), sig))
	require.False(t, v.Verify([]byte("other"), sig))

	_, err = NewVerifier(Descriptor{}, &p256Key.PublicKey)
	require.Error(t, err)
}
