package crypto

import (
	"crypto/dsa" //nolint:staticcheck
	"encoding/asn1"
	"errors"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// crypto/x509 does not parse DSA private keys, so PKCS#8 DSA keys are
// decoded here:
//
//	PrivateKeyInfo ::= SEQUENCE {
//	  version             INTEGER,
//	  privateKeyAlgorithm SEQUENCE { id-dsa, Dss-Parms { p, q, g } },
//	  privateKey          OCTET STRING { INTEGER x } }

var oidPublicKeyDSA = asn1.ObjectIdentifier{1, 2, 840, 10040, 4, 1}

var errMalformedDSAKey = errors.New("malformed DSA private key")

// pkcs8Algorithm returns the key algorithm OID of a PKCS#8 structure.
func pkcs8Algorithm(der []byte) (asn1.ObjectIdentifier, bool) {
	input := cryptobyte.String(der)
	var pki, algID cryptobyte.String
	var version int
	var oid asn1.ObjectIdentifier
	if !input.ReadASN1(&pki, cbasn1.SEQUENCE) ||
		!pki.ReadASN1Integer(&version) ||
		!pki.ReadASN1(&algID, cbasn1.SEQUENCE) ||
		!algID.ReadASN1ObjectIdentifier(&oid) {
		return nil, false
	}
	return oid, true
}

func isDSAPKCS8(der []byte) bool {
	oid, ok := pkcs8Algorithm(der)
	return ok && oid.Equal(oidPublicKeyDSA)
}

func parseDSAPKCS8(der []byte) (*dsa.PrivateKey, error) {
	input := cryptobyte.String(der)
	var pki, algID, params, keyOctets cryptobyte.String
	var version int
	var oid asn1.ObjectIdentifier

	if !input.ReadASN1(&pki, cbasn1.SEQUENCE) || !input.Empty() ||
		!pki.ReadASN1Integer(&version) ||
		!pki.ReadASN1(&algID, cbasn1.SEQUENCE) ||
		!algID.ReadASN1ObjectIdentifier(&oid) {
		return nil, errMalformedDSAKey
	}
	if version != 0 || !oid.Equal(oidPublicKeyDSA) {
		return nil, errMalformedDSAKey
	}

	p, q, g := new(big.Int), new(big.Int), new(big.Int)
	if !algID.ReadASN1(&params, cbasn1.SEQUENCE) ||
		!params.ReadASN1Integer(p) ||
		!params.ReadASN1Integer(q) ||
		!params.ReadASN1Integer(g) ||
		!params.Empty() {
		return nil, errors.New("malformed DSA parameters")
	}

	x := new(big.Int)
	if !pki.ReadASN1(&keyOctets, cbasn1.OCTET_STRING) ||
		!keyOctets.ReadASN1Integer(x) ||
		!keyOctets.Empty() {
		return nil, errMalformedDSAKey
	}

	if p.Sign() <= 0 || q.Sign() <= 0 || g.Sign() <= 0 || x.Sign() <= 0 || x.Cmp(q) >= 0 {
		return nil, errors.New("invalid DSA key values")
	}

	return &dsa.PrivateKey{
		PublicKey: dsa.PublicKey{
			Parameters: dsa.Parameters{P: p, Q: q, G: g},
			Y:          new(big.Int).Exp(g, x, p),
		},
		X: x,
	}, nil
}
