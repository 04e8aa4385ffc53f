package dta1

import (
	"encoding/hex"
	"fmt"
	"net/http"
)

// SignConfig configures request signing.
type SignConfig struct {
	// Credential is the (secret key, public key) pair to sign with.
	// Required.
	Credential Credential

	// Clock supplies the signing instant. Defaults to SystemClock.
	Clock Clock
}

// SignRequest signs an HTTP request in place. It sets the x-amz-date
// header to the current instant, discards any previous Authorization
// header, signs every header present on the request, and sets the new
// Authorization header.
//
// Signing the same request twice with the same clock reading produces
// byte-identical headers; re-signing with an advancing clock replaces
// both headers with values for the latest call.
func SignRequest(r *http.Request, cfg SignConfig) error {
	if r == nil {
		return fmt.Errorf("%w: request must not be nil", ErrInvalidArgument)
	}

	if cfg.Credential.SecretKey == "" || cfg.Credential.PublicKey == "" {
		return fmt.Errorf("%w: credential must have secret and public keys", ErrInvalidArgument)
	}

	if r.URL == nil {
		return fmt.Errorf("%w: request has no URL", ErrSigningFailed)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock()
	}

	now := clock.Now().UTC()
	dateTime := now.Format(TimeFormat)
	date := now.Format(ShortTimeFormat)

	// The timestamp participates in the signature, so it is set before
	// the signed header set is collected. A stale Authorization header
	// must not sign itself and is dropped first.
	r.Header.Set(AmzDateHeader, dateTime)
	r.Header.Del(AuthorizationHeader)

	body, err := readAndRestoreBody(r)
	if err != nil {
		return fmt.Errorf("%w: reading body: %v", ErrSigningFailed, err)
	}

	headers := collectSignedHeaders(r)

	canonical := buildCanonicalRequest(r.Method, canonicalPath(r), headers, hashHex(body))
	signature := computeSignature(cfg.Credential.SecretKey, date, dateTime, canonical)

	r.Header.Set(AuthorizationHeader, formatAuthorization(signedHeaderNames(headers), cfg.Credential.PublicKey, date, signature))

	return nil
}

// computeSignature derives the per-day key and returns the lowercase
// hex HMAC of the string to sign.
func computeSignature(secretKey, date, dateTime, canonicalRequest string) string {
	key := deriveKey(secretKey, date)

	return hex.EncodeToString(hmacSHA256(key, []byte(stringToSign(dateTime, canonicalRequest))))
}

// formatAuthorization renders the Authorization header value:
//
//	DTA1-HMAC-SHA256 SignedHeaders=<a;b;c>, Credential=<publicKey>/<date>, Signature=<hex>
func formatAuthorization(signedHeaders, publicKey, date, signature string) string {
	return fmt.Sprintf("%s SignedHeaders=%s, Credential=%s/%s, Signature=%s",
		SigningAlgorithm, signedHeaders, publicKey, date, signature)
}
