package crypto

// aliases maps uppercase algorithm spellings and dotted OIDs to canonical
// names. It is never written after initialization.
var aliases = map[string]AlgorithmID{
	"MD2WITHRSA":              AlgMD2withRSA,
	"MD2WITHRSAENCRYPTION":    AlgMD2withRSA,
	"1.2.840.113549.1.1.2":    AlgMD2withRSA,
	"MD4WITHRSA":              AlgMD4withRSA,
	"MD4WITHRSAENCRYPTION":    AlgMD4withRSA,
	"1.2.840.113549.1.1.3":    AlgMD4withRSA,
	"MD5WITHRSA":              AlgMD5withRSA,
	"MD5WITHRSAENCRYPTION":    AlgMD5withRSA,
	"1.2.840.113549.1.1.4":    AlgMD5withRSA,
	"SHA1WITHRSA":             AlgSHA1withRSA,
	"SHA1WITHRSAENCRYPTION":   AlgSHA1withRSA,
	"SHA-1WITHRSA":            AlgSHA1withRSA,
	"1.2.840.113549.1.1.5":    AlgSHA1withRSA,
	"SHA224WITHRSA":           AlgSHA224withRSA,
	"SHA224WITHRSAENCRYPTION": AlgSHA224withRSA,
	"SHA-224WITHRSA":          AlgSHA224withRSA,
	"1.2.840.113549.1.1.14":   AlgSHA224withRSA,
	"SHA256WITHRSA":           AlgSHA256withRSA,
	"SHA256WITHRSAENCRYPTION": AlgSHA256withRSA,
	"SHA-256WITHRSA":          AlgSHA256withRSA,
	"1.2.840.113549.1.1.11":   AlgSHA256withRSA,
	"SHA384WITHRSA":           AlgSHA384withRSA,
	"SHA384WITHRSAENCRYPTION": AlgSHA384withRSA,
	"SHA-384WITHRSA":          AlgSHA384withRSA,
	"1.2.840.113549.1.1.12":   AlgSHA384withRSA,
	"SHA512WITHRSA":           AlgSHA512withRSA,
	"SHA512WITHRSAENCRYPTION": AlgSHA512withRSA,
	"SHA-512WITHRSA":          AlgSHA512withRSA,
	"1.2.840.113549.1.1.13":   AlgSHA512withRSA,

	"RIPEMD128WITHRSA":           AlgRIPEMD128withRSA,
	"RIPEMD128WITHRSAENCRYPTION": AlgRIPEMD128withRSA,
	"1.3.36.3.3.1.3":             AlgRIPEMD128withRSA,
	"RIPEMD160WITHRSA":           AlgRIPEMD160withRSA,
	"RIPEMD160WITHRSAENCRYPTION": AlgRIPEMD160withRSA,
	"1.3.36.3.3.1.2":             AlgRIPEMD160withRSA,
	"RIPEMD256WITHRSA":           AlgRIPEMD256withRSA,
	"RIPEMD256WITHRSAENCRYPTION": AlgRIPEMD256withRSA,
	"1.3.36.3.3.1.4":             AlgRIPEMD256withRSA,

	"NONEWITHRSA": AlgNONEwithRSA,
	"RSAWITHNONE": AlgNONEwithRSA,
	"RAWRSA":      AlgNONEwithRSA,

	"PSSWITHRSA":            AlgPSSwithRSA,
	"RSASSA-PSS":            AlgPSSwithRSA,
	"RSAPSS":                AlgPSSwithRSA,
	"1.2.840.113549.1.1.10": AlgPSSwithRSA,

	"RAWRSAPSS":          AlgRawRSASSAPSS,
	"NONEWITHRSAPSS":     AlgRawRSASSAPSS,
	"NONEWITHRSASSA-PSS": AlgRawRSASSAPSS,

	"SHA1WITHRSAANDMGF1":    AlgSHA1withRSAandMGF1,
	"SHA-1WITHRSAANDMGF1":   AlgSHA1withRSAandMGF1,
	"SHA1WITHRSA/PSS":       AlgSHA1withRSAandMGF1,
	"SHA-1WITHRSA/PSS":      AlgSHA1withRSAandMGF1,
	"SHA224WITHRSAANDMGF1":  AlgSHA224withRSAandMGF1,
	"SHA-224WITHRSAANDMGF1": AlgSHA224withRSAandMGF1,
	"SHA224WITHRSA/PSS":     AlgSHA224withRSAandMGF1,
	"SHA-224WITHRSA/PSS":    AlgSHA224withRSAandMGF1,
	"SHA256WITHRSAANDMGF1":  AlgSHA256withRSAandMGF1,
	"SHA-256WITHRSAANDMGF1": AlgSHA256withRSAandMGF1,
	"SHA256WITHRSA/PSS":     AlgSHA256withRSAandMGF1,
	"SHA-256WITHRSA/PSS":    AlgSHA256withRSAandMGF1,
	"SHA384WITHRSAANDMGF1":  AlgSHA384withRSAandMGF1,
	"SHA-384WITHRSAANDMGF1": AlgSHA384withRSAandMGF1,
	"SHA384WITHRSA/PSS":     AlgSHA384withRSAandMGF1,
	"SHA-384WITHRSA/PSS":    AlgSHA384withRSAandMGF1,
	"SHA512WITHRSAANDMGF1":  AlgSHA512withRSAandMGF1,
	"SHA-512WITHRSAANDMGF1": AlgSHA512withRSAandMGF1,
	"SHA512WITHRSA/PSS":     AlgSHA512withRSAandMGF1,
	"SHA-512WITHRSA/PSS":    AlgSHA512withRSAandMGF1,

	"NONEWITHDSA": AlgNONEwithDSA,
	"DSAWITHNONE": AlgNONEwithDSA,
	"RAWDSA":      AlgNONEwithDSA,

	"DSA":               AlgSHA1withDSA,
	"DSAWITHSHA1":       AlgSHA1withDSA,
	"DSAWITHSHA-1":      AlgSHA1withDSA,
	"SHA/DSA":           AlgSHA1withDSA,
	"SHA1/DSA":          AlgSHA1withDSA,
	"SHA-1/DSA":         AlgSHA1withDSA,
	"SHA1WITHDSA":       AlgSHA1withDSA,
	"SHA-1WITHDSA":      AlgSHA1withDSA,
	"1.2.840.10040.4.3": AlgSHA1withDSA,

	"DSAWITHSHA224":          AlgSHA224withDSA,
	"DSAWITHSHA-224":         AlgSHA224withDSA,
	"SHA224/DSA":             AlgSHA224withDSA,
	"SHA-224/DSA":            AlgSHA224withDSA,
	"SHA224WITHDSA":          AlgSHA224withDSA,
	"SHA-224WITHDSA":         AlgSHA224withDSA,
	"2.16.840.1.101.3.4.3.1": AlgSHA224withDSA,
	"DSAWITHSHA256":          AlgSHA256withDSA,
	"DSAWITHSHA-256":         AlgSHA256withDSA,
	"SHA256/DSA":             AlgSHA256withDSA,
	"SHA-256/DSA":            AlgSHA256withDSA,
	"SHA256WITHDSA":          AlgSHA256withDSA,
	"SHA-256WITHDSA":         AlgSHA256withDSA,
	"2.16.840.1.101.3.4.3.2": AlgSHA256withDSA,
	"DSAWITHSHA384":          AlgSHA384withDSA,
	"DSAWITHSHA-384":         AlgSHA384withDSA,
	"SHA384/DSA":             AlgSHA384withDSA,
	"SHA-384/DSA":            AlgSHA384withDSA,
	"SHA384WITHDSA":          AlgSHA384withDSA,
	"SHA-384WITHDSA":         AlgSHA384withDSA,
	"2.16.840.1.101.3.4.3.3": AlgSHA384withDSA,
	"DSAWITHSHA512":          AlgSHA512withDSA,
	"DSAWITHSHA-512":         AlgSHA512withDSA,
	"SHA512/DSA":             AlgSHA512withDSA,
	"SHA-512/DSA":            AlgSHA512withDSA,
	"SHA512WITHDSA":          AlgSHA512withDSA,
	"SHA-512WITHDSA":         AlgSHA512withDSA,
	"2.16.840.1.101.3.4.3.4": AlgSHA512withDSA,

	"NONEWITHECDSA": AlgNONEwithECDSA,
	"ECDSAWITHNONE": AlgNONEwithECDSA,

	"ECDSA":             AlgSHA1withECDSA,
	"SHA1/ECDSA":        AlgSHA1withECDSA,
	"SHA-1/ECDSA":       AlgSHA1withECDSA,
	"ECDSAWITHSHA1":     AlgSHA1withECDSA,
	"ECDSAWITHSHA-1":    AlgSHA1withECDSA,
	"SHA1WITHECDSA":     AlgSHA1withECDSA,
	"SHA-1WITHECDSA":    AlgSHA1withECDSA,
	"1.2.840.10045.4.1": AlgSHA1withECDSA,
	"1.3.36.3.3.2.1":    AlgSHA1withECDSA,

	"SHA224/ECDSA":        AlgSHA224withECDSA,
	"SHA-224/ECDSA":       AlgSHA224withECDSA,
	"ECDSAWITHSHA224":     AlgSHA224withECDSA,
	"ECDSAWITHSHA-224":    AlgSHA224withECDSA,
	"SHA224WITHECDSA":     AlgSHA224withECDSA,
	"SHA-224WITHECDSA":    AlgSHA224withECDSA,
	"1.2.840.10045.4.3.1": AlgSHA224withECDSA,
	"SHA256/ECDSA":        AlgSHA256withECDSA,
	"SHA-256/ECDSA":       AlgSHA256withECDSA,
	"ECDSAWITHSHA256":     AlgSHA256withECDSA,
	"ECDSAWITHSHA-256":    AlgSHA256withECDSA,
	"SHA256WITHECDSA":     AlgSHA256withECDSA,
	"SHA-256WITHECDSA":    AlgSHA256withECDSA,
	"1.2.840.10045.4.3.2": AlgSHA256withECDSA,
	"SHA384/ECDSA":        AlgSHA384withECDSA,
	"SHA-384/ECDSA":       AlgSHA384withECDSA,
	"ECDSAWITHSHA384":     AlgSHA384withECDSA,
	"ECDSAWITHSHA-384":    AlgSHA384withECDSA,
	"SHA384WITHECDSA":     AlgSHA384withECDSA,
	"SHA-384WITHECDSA":    AlgSHA384withECDSA,
	"1.2.840.10045.4.3.3": AlgSHA384withECDSA,
	"SHA512/ECDSA":        AlgSHA512withECDSA,
	"SHA-512/ECDSA":       AlgSHA512withECDSA,
	"ECDSAWITHSHA512":     AlgSHA512withECDSA,
	"ECDSAWITHSHA-512":    AlgSHA512withECDSA,
	"SHA512WITHECDSA":     AlgSHA512withECDSA,
	"SHA-512WITHECDSA":    AlgSHA512withECDSA,
	"1.2.840.10045.4.3.4": AlgSHA512withECDSA,

	"RIPEMD160/ECDSA":    AlgRIPEMD160withECDSA,
	"ECDSAWITHRIPEMD160": AlgRIPEMD160withECDSA,
	"RIPEMD160WITHECDSA": AlgRIPEMD160withECDSA,
	"1.3.36.3.3.2.2":     AlgRIPEMD160withECDSA,

	"GOST-3410":            AlgGOST3410,
	"GOST-3410-94":         AlgGOST3410,
	"GOST3411WITHGOST3410": AlgGOST3410,
	"1.2.643.2.2.4":        AlgGOST3410,

	"ECGOST-3410":            AlgECGOST3410,
	"ECGOST-3410-2001":       AlgECGOST3410,
	"GOST3411WITHECGOST3410": AlgECGOST3410,
	"1.2.643.2.2.3":          AlgECGOST3410,
}
