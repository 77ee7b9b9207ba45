package crypto

import (
	"crypto"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/asn1"
	"hash"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
	"golang.org/x/crypto/md4"       //nolint:staticcheck
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck

	"github.com/mifos/vnext-auth/internal/legacyhash"
)

// Digest identifies the message digest half of a signature algorithm.
type Digest int

const (
	// DigestNone signs the message as given, without hashing it first.
	DigestNone Digest = iota
	DigestMD2
	DigestMD4
	DigestMD5
	DigestSHA1
	DigestSHA224
	DigestSHA256
	DigestSHA384
	DigestSHA512
	DigestRIPEMD128
	DigestRIPEMD160
	DigestRIPEMD256
)

// digestInfo holds metadata about a digest.
type digestInfo struct {
	Name string
	// OID is the AlgorithmIdentifier used in a PKCS#1 v1.5 DigestInfo.
	OID  asn1.ObjectIdentifier
	Hash crypto.Hash
	New  func() hash.Hash
}

var digests = map[Digest]digestInfo{
	DigestNone:      {Name: "NONE"},
	DigestMD2:       {Name: "MD2", OID: asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 2}, New: legacyhash.NewMD2},
	DigestMD4:       {Name: "MD4", OID: asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 4}, Hash: crypto.MD4, New: md4.New},
	DigestMD5:       {Name: "MD5", OID: asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 5}, Hash: crypto.MD5, New: md5.New},
	DigestSHA1:      {Name: "SHA-1", OID: asn1.ObjectIdentifier{1, 3, 14, 3, 2, 26}, Hash: crypto.SHA1, New: sha1.New},
	DigestSHA224:    {Name: "SHA-224", OID: asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 4}, Hash: crypto.SHA224, New: sha256.New224},
	DigestSHA256:    {Name: "SHA-256", OID: asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}, Hash: crypto.SHA256, New: sha256.New},
	DigestSHA384:    {Name: "SHA-384", OID: asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 2}, Hash: crypto.SHA384, New: sha512.New384},
	DigestSHA512:    {Name: "SHA-512", OID: asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 3}, Hash: crypto.SHA512, New: sha512.New},
	DigestRIPEMD128: {Name: "RIPEMD-128", OID: asn1.ObjectIdentifier{1, 3, 36, 3, 2, 2}, New: legacyhash.NewRIPEMD128},
	DigestRIPEMD160: {Name: "RIPEMD-160", OID: asn1.ObjectIdentifier{1, 3, 36, 3, 2, 1}, Hash: crypto.RIPEMD160, New: ripemd160.New},
	DigestRIPEMD256: {Name: "RIPEMD-256", OID: asn1.ObjectIdentifier{1, 3, 36, 3, 2, 3}, New: legacyhash.NewRIPEMD256},
}

// String returns the conventional name of the digest.
func (d Digest) String() string {
	if info, ok := digests[d]; ok {
		return info.Name
	}
	return "UNKNOWN"
}

// Size returns the digest output length in bytes, or 0 for DigestNone.
func (d Digest) Size() int {
	if h := d.New(); h != nil {
		return h.Size()
	}
	return 0
}

// New returns a fresh hash.Hash, or nil for DigestNone.
func (d Digest) New() hash.Hash {
	info, ok := digests[d]
	if !ok || info.New == nil {
		return nil
	}
	return info.New()
}

// OID returns the digest AlgorithmIdentifier OID, or nil for DigestNone.
func (d Digest) OID() asn1.ObjectIdentifier {
	info, ok := digests[d]
	if !ok || info.OID == nil {
		return nil
	}
	oid := make(asn1.ObjectIdentifier, len(info.OID))
	copy(oid, info.OID)
	return oid
}

// cryptoHash returns the standard library hash identifier, or 0 if the
// digest has none.
func (d Digest) cryptoHash() crypto.Hash {
	return digests[d].Hash
}

// Sum hashes message. DigestNone returns message unchanged.
func (d Digest) Sum(message []byte) []byte {
	h := d.New()
	if h == nil {
		return message
	}
	h.Write(message)
	return h.Sum(nil)
}

// encodeDigestInfo returns the DER DigestInfo structure a PKCS#1 v1.5 signature
// carries. DigestNone returns message unchanged.
func (d Digest) encodeDigestInfo(message []byte) ([]byte, error) {
	if d == DigestNone {
		return message, nil
	}
	sum := d.Sum(message)

	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(digests[d].OID)
			b.AddASN1NULL()
		})
		b.AddASN1OctetString(sum)
	})
	return b.Bytes()
}

// checkDigestInfo accepts exactly one DER DigestInfo:
// SEQUENCE { SEQUENCE { OID, parameters }, OCTET STRING }.
func checkDigestInfo(b []byte) error {
	input := cryptobyte.String(b)
	var info, algID, sum cryptobyte.String
	var oid asn1.ObjectIdentifier
	if !input.ReadASN1(&info, cbasn1.SEQUENCE) || !input.Empty() ||
		!info.ReadASN1(&algID, cbasn1.SEQUENCE) ||
		!algID.ReadASN1ObjectIdentifier(&oid) ||
		!info.ReadASN1(&sum, cbasn1.OCTET_STRING) || !info.Empty() {
		return ErrNotDigestInfo
	}
	return nil
}
