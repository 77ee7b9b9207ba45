// Package crypto provides the signature algorithms used to authenticate a
// client against the payment hub: a registry resolving algorithm names and
// OIDs to canonical descriptors, the signer/verifier primitive of each
// supported family, and PEM private key loading.
package crypto

import (
	"encoding/asn1"
	"sort"
	"strings"
)

// AlgorithmID is the canonical name of a signature algorithm.
type AlgorithmID string

// RSA PKCS#1 v1.5 signature algorithms.
const (
	AlgNONEwithRSA      AlgorithmID = "RSA"
	AlgMD2withRSA       AlgorithmID = "MD2withRSA"
	AlgMD4withRSA       AlgorithmID = "MD4withRSA"
	AlgMD5withRSA       AlgorithmID = "MD5withRSA"
	AlgSHA1withRSA      AlgorithmID = "SHA-1withRSA"
	AlgSHA224withRSA    AlgorithmID = "SHA-224withRSA"
	AlgSHA256withRSA    AlgorithmID = "SHA-256withRSA"
	AlgSHA384withRSA    AlgorithmID = "SHA-384withRSA"
	AlgSHA512withRSA    AlgorithmID = "SHA-512withRSA"
	AlgRIPEMD128withRSA AlgorithmID = "RIPEMD128withRSA"
	AlgRIPEMD160withRSA AlgorithmID = "RIPEMD160withRSA"
	AlgRIPEMD256withRSA AlgorithmID = "RIPEMD256withRSA"
)

// RSASSA-PSS signature algorithms (MGF1 with the message digest, salt
// length equal to the digest length).
const (
	AlgSHA1withRSAandMGF1   AlgorithmID = "SHA-1withRSAandMGF1"
	AlgSHA224withRSAandMGF1 AlgorithmID = "SHA-224withRSAandMGF1"
	AlgSHA256withRSAandMGF1 AlgorithmID = "SHA-256withRSAandMGF1"
	AlgSHA384withRSAandMGF1 AlgorithmID = "SHA-384withRSAandMGF1"
	AlgSHA512withRSAandMGF1 AlgorithmID = "SHA-512withRSAandMGF1"
)

// DSA signature algorithms.
const (
	AlgNONEwithDSA   AlgorithmID = "NONEwithDSA"
	AlgSHA1withDSA   AlgorithmID = "SHA-1withDSA"
	AlgSHA224withDSA AlgorithmID = "SHA-224withDSA"
	AlgSHA256withDSA AlgorithmID = "SHA-256withDSA"
	AlgSHA384withDSA AlgorithmID = "SHA-384withDSA"
	AlgSHA512withDSA AlgorithmID = "SHA-512withDSA"
)

// ECDSA signature algorithms.
const (
	AlgNONEwithECDSA      AlgorithmID = "NONEwithECDSA"
	AlgSHA1withECDSA      AlgorithmID = "SHA-1withECDSA"
	AlgSHA224withECDSA    AlgorithmID = "SHA-224withECDSA"
	AlgSHA256withECDSA    AlgorithmID = "SHA-256withECDSA"
	AlgSHA384withECDSA    AlgorithmID = "SHA-384withECDSA"
	AlgSHA512withECDSA    AlgorithmID = "SHA-512withECDSA"
	AlgRIPEMD160withECDSA AlgorithmID = "RIPEMD160withECDSA"
)

// EC Nyberg-Rueppel signature algorithms.
const (
	AlgSHA1withECNR   AlgorithmID = "SHA1WITHECNR"
	AlgSHA224withECNR AlgorithmID = "SHA224WITHECNR"
	AlgSHA256withECNR AlgorithmID = "SHA256WITHECNR"
	AlgSHA384withECNR AlgorithmID = "SHA384WITHECNR"
	AlgSHA512withECNR AlgorithmID = "SHA512WITHECNR"
)

// ISO/IEC 9796-2 scheme 1 signature algorithms (implicit trailer).
const (
	AlgSHA1withRSAISO9796d2      AlgorithmID = "SHA1WITHRSA/ISO9796-2"
	AlgMD5withRSAISO9796d2       AlgorithmID = "MD5WITHRSA/ISO9796-2"
	AlgRIPEMD160withRSAISO9796d2 AlgorithmID = "RIPEMD160WITHRSA/ISO9796-2"
)

// Algorithms that have a name and aliases but no implementation. Resolving
// them fails with UnsupportedAlgorithmError.
const (
	AlgPSSwithRSA   AlgorithmID = "PSSwithRSA"
	AlgRawRSASSAPSS AlgorithmID = "RAWRSASSA-PSS"
	AlgGOST3410     AlgorithmID = "GOST3410"
	AlgECGOST3410   AlgorithmID = "ECGOST3410"
)

// DefaultAlgorithm is the algorithm the payment hub network expects when
// none is configured.
const DefaultAlgorithm = AlgSHA1withRSA

// Scheme identifies the signature half of an algorithm.
type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeRSAPKCS1v15
	SchemeRSAPSS
	SchemeDSA
	SchemeECDSA
	SchemeECNR
	SchemeISO9796d2
)

var schemeNames = map[Scheme]string{
	SchemeRSAPKCS1v15: "RSA PKCS#1 v1.5",
	SchemeRSAPSS:      "RSASSA-PSS",
	SchemeDSA:         "DSA",
	SchemeECDSA:       "ECDSA",
	SchemeECNR:        "ECNR",
	SchemeISO9796d2:   "ISO 9796-2",
}

// String returns a human-readable scheme name.
func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return "unknown"
}

// KeyFamily returns the private key family the scheme signs with.
func (s Scheme) KeyFamily() KeyFamily {
	switch s {
	case SchemeRSAPKCS1v15, SchemeRSAPSS, SchemeISO9796d2:
		return KeyFamilyRSA
	case SchemeDSA:
		return KeyFamilyDSA
	case SchemeECDSA, SchemeECNR:
		return KeyFamilyEC
	default:
		return KeyFamilyUnknown
	}
}

// algorithmInfo holds metadata about an algorithm.
type algorithmInfo struct {
	Scheme Scheme
	Digest Digest
	OID    asn1.ObjectIdentifier
}

// algorithms maps every supported canonical name to its metadata.
var algorithms = map[AlgorithmID]algorithmInfo{
	// RSA PKCS#1 v1.5
	AlgNONEwithRSA:      {Scheme: SchemeRSAPKCS1v15, Digest: DigestNone},
	AlgMD2withRSA:       {Scheme: SchemeRSAPKCS1v15, Digest: DigestMD2, OID: asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 2}},
	AlgMD4withRSA:       {Scheme: SchemeRSAPKCS1v15, Digest: DigestMD4, OID: asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 3}},
	AlgMD5withRSA:       {Scheme: SchemeRSAPKCS1v15, Digest: DigestMD5, OID: asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 4}},
	AlgSHA1withRSA:      {Scheme: SchemeRSAPKCS1v15, Digest: DigestSHA1, OID: asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 5}},
	AlgSHA224withRSA:    {Scheme: SchemeRSAPKCS1v15, Digest: DigestSHA224, OID: asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 14}},
	AlgSHA256withRSA:    {Scheme: SchemeRSAPKCS1v15, Digest: DigestSHA256, OID: asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}},
	AlgSHA384withRSA:    {Scheme: SchemeRSAPKCS1v15, Digest: DigestSHA384, OID: asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 12}},
	AlgSHA512withRSA:    {Scheme: SchemeRSAPKCS1v15, Digest: DigestSHA512, OID: asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 13}},
	AlgRIPEMD128withRSA: {Scheme: SchemeRSAPKCS1v15, Digest: DigestRIPEMD128, OID: asn1.ObjectIdentifier{1, 3, 36, 3, 3, 1, 3}},
	AlgRIPEMD160withRSA: {Scheme: SchemeRSAPKCS1v15, Digest: DigestRIPEMD160, OID: asn1.ObjectIdentifier{1, 3, 36, 3, 3, 1, 2}},
	AlgRIPEMD256withRSA: {Scheme: SchemeRSAPKCS1v15, Digest: DigestRIPEMD256, OID: asn1.ObjectIdentifier{1, 3, 36, 3, 3, 1, 4}},

	// RSASSA-PSS. All variants share id-RSASSA-PSS; the OID alone does not
	// select a digest, so it is not registered as an alias for any of them.
	AlgSHA1withRSAandMGF1:   {Scheme: SchemeRSAPSS, Digest: DigestSHA1, OID: oidRSASSAPSS},
	AlgSHA224withRSAandMGF1: {Scheme: SchemeRSAPSS, Digest: DigestSHA224, OID: oidRSASSAPSS},
	AlgSHA256withRSAandMGF1: {Scheme: SchemeRSAPSS, Digest: DigestSHA256, OID: oidRSASSAPSS},
	AlgSHA384withRSAandMGF1: {Scheme: SchemeRSAPSS, Digest: DigestSHA384, OID: oidRSASSAPSS},
	AlgSHA512withRSAandMGF1: {Scheme: SchemeRSAPSS, Digest: DigestSHA512, OID: oidRSASSAPSS},

	// DSA
	AlgNONEwithDSA:   {Scheme: SchemeDSA, Digest: DigestNone},
	AlgSHA1withDSA:   {Scheme: SchemeDSA, Digest: DigestSHA1, OID: asn1.ObjectIdentifier{1, 2, 840, 10040, 4, 3}},
	AlgSHA224withDSA: {Scheme: SchemeDSA, Digest: DigestSHA224, OID: asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 1}},
	AlgSHA256withDSA: {Scheme: SchemeDSA, Digest: DigestSHA256, OID: asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 2}},
	AlgSHA384withDSA: {Scheme: SchemeDSA, Digest: DigestSHA384, OID: asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 3}},
	AlgSHA512withDSA: {Scheme: SchemeDSA, Digest: DigestSHA512, OID: asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 4}},

	// ECDSA
	AlgNONEwithECDSA:      {Scheme: SchemeECDSA, Digest: DigestNone},
	AlgSHA1withECDSA:      {Scheme: SchemeECDSA, Digest: DigestSHA1, OID: asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 1}},
	AlgSHA224withECDSA:    {Scheme: SchemeECDSA, Digest: DigestSHA224, OID: asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 1}},
	AlgSHA256withECDSA:    {Scheme: SchemeECDSA, Digest: DigestSHA256, OID: asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 2}},
	AlgSHA384withECDSA:    {Scheme: SchemeECDSA, Digest: DigestSHA384, OID: asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}},
	AlgSHA512withECDSA:    {Scheme: SchemeECDSA, Digest: DigestSHA512, OID: asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 4}},
	AlgRIPEMD160withECDSA: {Scheme: SchemeECDSA, Digest: DigestRIPEMD160, OID: asn1.ObjectIdentifier{1, 3, 36, 3, 3, 2, 2}},

	// ECNR
	AlgSHA1withECNR:   {Scheme: SchemeECNR, Digest: DigestSHA1},
	AlgSHA224withECNR: {Scheme: SchemeECNR, Digest: DigestSHA224},
	AlgSHA256withECNR: {Scheme: SchemeECNR, Digest: DigestSHA256},
	AlgSHA384withECNR: {Scheme: SchemeECNR, Digest: DigestSHA384},
	AlgSHA512withECNR: {Scheme: SchemeECNR, Digest: DigestSHA512},

	// ISO 9796-2
	AlgSHA1withRSAISO9796d2:      {Scheme: SchemeISO9796d2, Digest: DigestSHA1},
	AlgMD5withRSAISO9796d2:       {Scheme: SchemeISO9796d2, Digest: DigestMD5},
	AlgRIPEMD160withRSAISO9796d2: {Scheme: SchemeISO9796d2, Digest: DigestRIPEMD160},
}

var oidRSASSAPSS = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 10}

// unsupported lists canonical names that are recognised but not implemented.
var unsupported = map[AlgorithmID]bool{
	AlgPSSwithRSA:   true,
	AlgRawRSASSAPSS: true,
	AlgGOST3410:     true,
	AlgECGOST3410:   true,
}

// canonicalByUpper indexes every canonical name by its uppercase spelling.
var canonicalByUpper = func() map[string]AlgorithmID {
	m := make(map[string]AlgorithmID, len(algorithms)+len(unsupported))
	for id := range algorithms {
		m[strings.ToUpper(string(id))] = id
	}
	for id := range unsupported {
		m[strings.ToUpper(string(id))] = id
	}
	return m
}()

// Descriptor is the canonical identity of a signature algorithm: one
// signature scheme paired with one digest. Descriptors are values and
// cannot be modified once resolved.
type Descriptor struct {
	id     AlgorithmID
	scheme Scheme
	digest Digest
	oid    asn1.ObjectIdentifier
}

// ID returns the canonical algorithm name.
func (d Descriptor) ID() AlgorithmID { return d.id }

// Scheme returns the signature scheme.
func (d Descriptor) Scheme() Scheme { return d.scheme }

// Digest returns the message digest.
func (d Descriptor) Digest() Digest { return d.digest }

// OID returns the signature algorithm OID, or nil if the algorithm has no
// registered identifier.
func (d Descriptor) OID() asn1.ObjectIdentifier {
	if d.oid == nil {
		return nil
	}
	oid := make(asn1.ObjectIdentifier, len(d.oid))
	copy(oid, d.oid)
	return oid
}

// IsZero reports whether d is the zero Descriptor.
func (d Descriptor) IsZero() bool { return d.id == "" }

// String returns the canonical algorithm name.
func (d Descriptor) String() string { return string(d.id) }

// Description returns a human-readable description of the algorithm.
func (d Descriptor) Description() string {
	if d.digest == DigestNone {
		return d.scheme.String() + " without digest"
	}
	return d.scheme.String() + " with " + d.digest.String()
}

func descriptorFor(id AlgorithmID) Descriptor {
	info := algorithms[id]
	return Descriptor{id: id, scheme: info.Scheme, digest: info.Digest, oid: info.OID}
}

// ResolveAlgorithm maps a case-insensitive algorithm name, alias or dotted
// OID to its canonical descriptor.
//
// The input is uppercased and looked up in the alias table first; if no
// alias matches, it is compared against the canonical names. Recognised but
// unimplemented algorithms fail with *UnsupportedAlgorithmError, anything
// else with *UnknownAlgorithmError.
func ResolveAlgorithm(nameOrOID string) (Descriptor, error) {
	key := strings.ToUpper(strings.TrimSpace(nameOrOID))

	id, ok := aliases[key]
	if !ok {
		id, ok = canonicalByUpper[key]
	}
	if !ok {
		return Descriptor{}, &UnknownAlgorithmError{Name: nameOrOID}
	}
	if unsupported[id] {
		return Descriptor{}, &UnsupportedAlgorithmError{Name: nameOrOID, Canonical: id}
	}
	return descriptorFor(id), nil
}

// MustResolveAlgorithm is like ResolveAlgorithm but panics on error.
// Intended for package-level defaults with known-good names.
func MustResolveAlgorithm(nameOrOID string) Descriptor {
	d, err := ResolveAlgorithm(nameOrOID)
	if err != nil {
		panic(err)
	}
	return d
}

// Algorithms returns the descriptors of all supported algorithms, sorted by
// canonical name.
func Algorithms() []Descriptor {
	out := make([]Descriptor, 0, len(algorithms))
	for id := range algorithms {
		out = append(out, descriptorFor(id))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// UnsupportedAlgorithms returns the canonical names that resolve to
// UnsupportedAlgorithmError, sorted.
func UnsupportedAlgorithms() []AlgorithmID {
	out := make([]AlgorithmID, 0, len(unsupported))
	for id := range unsupported {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Aliases returns every alias and OID registered for id, sorted.
func Aliases(id AlgorithmID) []string {
	var out []string
	for alias, target := range aliases {
		if target == id {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}
