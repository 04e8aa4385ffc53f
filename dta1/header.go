package dta1

import "regexp"

// AuthenticationHeader is the parsed form of a DTA1 Authorization
// header value. Fields hold the raw captured text; nothing is decoded
// or normalized.
type AuthenticationHeader struct {
	// Algorithm is the leading algorithm token, e.g. "DTA1-HMAC-SHA256".
	Algorithm string

	// SignedHeaders is the semicolon-joined, order-preserving list of
	// header names covered by the signature.
	SignedHeaders string

	// Credential is the "<publicKey>/<date>" credential scope.
	Credential string

	// Signature is the lowercase hex signature.
	Signature string
}

// authHeaderPattern captures the four fields of the header grammar:
//
//	<algorithm> SignedHeaders=<signedHeaders>, Credential=<credential>, Signature=<signature>
//
// The pattern is unanchored at the end so that additional
// Credential=/Signature= pairs appended for multi-signature
// compatibility are tolerated; only the first occurrence of each field
// is captured.
var authHeaderPattern = regexp.MustCompile(`^(\S+) SignedHeaders=(\S+?), Credential=(\S+?), Signature=([^,\s]+)`)

// ParseAuthorization parses an Authorization header value. It returns
// the parsed fields and true on a grammar match, or a zero value and
// false otherwise. It never fails in any other way; callers treat a
// non-match as "verification cannot proceed".
func ParseAuthorization(value string) (AuthenticationHeader, bool) {
	m := authHeaderPattern.FindStringSubmatch(value)
	if m == nil {
		return AuthenticationHeader{}, false
	}

	return AuthenticationHeader{
		Algorithm:     m[1],
		SignedHeaders: m[2],
		Credential:    m[3],
		Signature:     m[4],
	}, true
}
