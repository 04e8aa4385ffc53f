package dta1

import (
	"crypto/hmac"
	"net/http"
	"strings"
	"time"
)

// VerifyConfig configures request verification.
type VerifyConfig struct {
	// Keys resolves the public key named in the Authorization header
	// to a credential. Required.
	Keys KeyStore

	// Clock supplies the verification instant for the freshness check.
	// Defaults to SystemClock.
	Clock Clock
}

// verifyReason records why verification stopped. The checks run in a
// fixed order and short-circuit on the first failure.
type verifyReason int

const (
	verifyOK verifyReason = iota
	reasonNotVerifiable
	reasonMissingDate
	reasonMalformedDate
	reasonStaleDate
	reasonMissingAuthorization
	reasonMalformedAuthorization
	reasonMalformedCredentialScope
	reasonUnknownKey
	reasonMissingSignedHeader
	reasonBodyUnreadable
	reasonSignatureMismatch
)

// VerifyRequest reports whether the request carries a valid, fresh
// DTA1 signature for a credential known to cfg.Keys.
//
// It returns false, never an error, for every condition the sender
// does not control: a missing or stale x-amz-date header, a missing or
// malformed Authorization header, an unknown public key, a signed
// header absent from the request, or a signature mismatch.
func VerifyRequest(r *http.Request, cfg VerifyConfig) bool {
	return checkRequest(r, cfg) == verifyOK
}

// VerifyRequestWithCredential verifies against a single credential by
// wrapping it in a one-entry store and delegating to VerifyRequest.
// Any KeyStore in cfg is ignored.
func VerifyRequestWithCredential(r *http.Request, cred Credential, cfg VerifyConfig) bool {
	store := NewMemoryStore()
	store.Add(cred)
	cfg.Keys = store

	return VerifyRequest(r, cfg)
}

// checkRequest runs the verification ladder and reports where it
// stopped. Checks run in a fixed order with no partial credit:
// timestamp presence, format, and freshness; Authorization presence
// and grammar; credential scope shape; key lookup; signed header
// availability; and finally the signature comparison.
func checkRequest(r *http.Request, cfg VerifyConfig) verifyReason {
	if r == nil || r.URL == nil || cfg.Keys == nil {
		return reasonNotVerifiable
	}

	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock()
	}

	dateValue := r.Header.Get(AmzDateHeader)
	if dateValue == "" {
		return reasonMissingDate
	}

	signedAt, err := time.Parse(TimeFormat, dateValue)
	if err != nil {
		return reasonMalformedDate
	}

	if skew := clock.Now().UTC().Sub(signedAt); skew > MaxClockSkew || skew < -MaxClockSkew {
		return reasonStaleDate
	}

	received := r.Header.Get(AuthorizationHeader)
	if received == "" {
		return reasonMissingAuthorization
	}

	parsed, ok := ParseAuthorization(received)
	if !ok {
		return reasonMalformedAuthorization
	}

	scope := strings.Split(parsed.Credential, "/")
	if len(scope) < 2 {
		return reasonMalformedCredentialScope
	}

	cred, ok := cfg.Keys.Lookup(scope[0])
	if !ok {
		return reasonUnknownKey
	}

	headers, ok := resolveSignedHeaders(r, parsed.SignedHeaders)
	if !ok {
		return reasonMissingSignedHeader
	}

	body, err := readAndRestoreBody(r)
	if err != nil {
		return reasonBodyUnreadable
	}

	// The signing key is derived from the day the sender put in
	// x-amz-date, not from the verifier's clock, so a request signed
	// just before midnight still verifies just after it.
	date := signedAt.Format(ShortTimeFormat)

	canonical := buildCanonicalRequest(r.Method, canonicalPath(r), headers, hashHex(body))
	signature := computeSignature(cred.SecretKey, date, dateValue, canonical)

	// The expected header reuses the SignedHeaders list exactly as
	// received; regenerating it would mask ordering tampering.
	expected := formatAuthorization(parsed.SignedHeaders, scope[0], date, signature)

	if !hmac.Equal([]byte(expected), []byte(received)) {
		return reasonSignatureMismatch
	}

	return verifyOK
}

// resolveSignedHeaders looks up each header named in the
// semicolon-joined signedHeaders list on the request, case
// insensitively and preserving the order given. It reports false when
// any named header is absent, since the canonical request cannot be
// reconstructed without it.
func resolveSignedHeaders(r *http.Request, signedHeaders string) ([]signedHeader, bool) {
	names := strings.Split(signedHeaders, ";")
	headers := make([]signedHeader, 0, len(names))

	for _, name := range names {
		values := r.Header.Values(name)

		if len(values) == 0 && strings.EqualFold(name, "host") && r.Host != "" {
			// net/http keeps the Host header on Request.Host rather
			// than in the header map.
			values = []string{r.Host}
		}

		if len(values) == 0 {
			return nil, false
		}

		headers = append(headers, signedHeader{
			name:  strings.ToLower(name),
			value: strings.Join(values, ","),
		})
	}

	return headers, true
}
