package dta1

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

const (
	// SigningAlgorithm is the DTA1 signing algorithm identifier that
	// leads the Authorization header value.
	SigningAlgorithm = "DTA1-HMAC-SHA256"

	// AuthorizationHeader is the HTTP header carrying the signature.
	AuthorizationHeader = "Authorization"

	// AmzDateHeader is the HTTP header carrying the request timestamp.
	AmzDateHeader = "X-Amz-Date"

	// TimeFormat is the timestamp layout for the x-amz-date header and
	// the string to sign. Format: YYYYMMDDTHHMMSSZ.
	TimeFormat = "20060102T150405Z"

	// ShortTimeFormat is the calendar-day layout used for key
	// derivation and the credential scope. Format: YYYYMMDD.
	ShortTimeFormat = "20060102"

	// MaxClockSkew is the freshness window around the signed timestamp.
	// It applies symmetrically to future and past timestamps; a request
	// exactly MaxClockSkew away still verifies.
	MaxClockSkew = 15 * time.Minute
)

// signedHeader is one header entry of the canonical request, in the
// order it will be rendered.
type signedHeader struct {
	name  string
	value string
}

// buildCanonicalRequest renders the deterministic request string that
// gets hashed into the string to sign:
//
//	HTTP-METHOD
//	absolute-path
//	canonical-query (always empty; the scheme never signs query parameters)
//	canonical-headers
//	signed-headers
//	hex(SHA256(body))
//
// Each canonical header entry carries its own trailing newline, so a
// blank line separates the header block from the signed-headers line.
func buildCanonicalRequest(method, path string, headers []signedHeader, bodyHash string) string {
	var b strings.Builder

	b.WriteString(strings.ToUpper(method))
	b.WriteByte('\n')
	b.WriteString(path)
	b.WriteByte('\n')
	b.WriteByte('\n')

	for _, h := range headers {
		b.WriteString(strings.ToLower(h.name))
		b.WriteByte(':')
		b.WriteString(normalizeHeaderValue(h.value))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(signedHeaderNames(headers))
	b.WriteByte('\n')
	b.WriteString(bodyHash)

	return b.String()
}

// signedHeaderNames renders the semicolon-joined list of lowercased
// header names in the order they appear in headers.
func signedHeaderNames(headers []signedHeader) string {
	names := make([]string, len(headers))
	for i, h := range headers {
		names[i] = strings.ToLower(h.name)
	}

	return strings.Join(names, ";")
}

// stringToSign renders the final message handed to HMAC:
//
//	ALGORITHM
//	date-time
//	scope (reserved, always empty)
//	hex(SHA256(canonical-request))
func stringToSign(dateTime, canonicalRequest string) string {
	return SigningAlgorithm + "\n" + dateTime + "\n\n" + hashHex([]byte(canonicalRequest))
}

// deriveKey derives the per-day signing key from the shared secret.
// Keying on the 8-digit day narrows exposure of the raw secret and
// lets a verifier recompute the same key for any request within that
// calendar day.
func deriveKey(secretKey, date string) []byte {
	return hmacSHA256([]byte(secretKey), []byte(date))
}

func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)

	return h.Sum(nil)
}

func hashHex(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// normalizeHeaderValue trims leading and trailing whitespace and
// collapses interior whitespace runs to a single space.
func normalizeHeaderValue(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

// canonicalPath returns the request path percent-escaped exactly once,
// or "/" when the path is empty.
func canonicalPath(r *http.Request) string {
	path := r.URL.EscapedPath()
	if path == "" {
		path = "/"
	}

	return path
}

// collectSignedHeaders gathers every header currently on the request,
// sorted ascending by lowercased name. Multiple values for the same
// header are joined with ",". The Authorization header must already be
// removed by the caller.
func collectSignedHeaders(r *http.Request) []signedHeader {
	headers := make([]signedHeader, 0, len(r.Header))
	for name, values := range r.Header {
		headers = append(headers, signedHeader{
			name:  strings.ToLower(name),
			value: strings.Join(values, ","),
		})
	}

	sort.Slice(headers, func(i, j int) bool {
		return headers[i].name < headers[j].name
	})

	return headers
}

// readAndRestoreBody reads the entire request body and replaces it
// with a new reader so the body can be consumed again downstream.
func readAndRestoreBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}
