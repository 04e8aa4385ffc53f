// Package dta1 implements the DTA1-HMAC-SHA256 vendor request
// authentication scheme: a sender signs an HTTP request with a shared
// secret, and a receiver independently recomputes the signature to
// check authenticity and freshness.
//
// A signature covers the request method, path, headers, and body. The
// signing key is derived from the shared secret and the calendar day of
// the request, so the raw secret is never used to sign a message
// directly. Verification enforces a symmetric 15-minute freshness
// window around the x-amz-date timestamp.
//
// # Signing Requests
//
// Use SignRequest to add x-amz-date and Authorization headers to an
// HTTP request. The request is mutated in place:
//
//	cred, err := dta1.NewCredential("my-secret", "my-key-id")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = dta1.SignRequest(req, dta1.SignConfig{Credential: cred})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Signing covers every header present on the request at signing time;
// there is no opt-out. Re-signing an already signed request is
// supported: the previous Authorization header is discarded and the
// x-amz-date header is replaced before the new signature is computed.
//
// # Verifying Requests
//
// Use VerifyRequest to verify the signature on an incoming request.
// It returns a plain bool and never panics or returns an error for
// malformed input, so a hostile client cannot crash the verifier or
// probe it through error text:
//
//	store := dta1.NewMemoryStore()
//	if err := store.LoadFile("/etc/vendor/credentials"); err != nil {
//	    log.Fatal(err)
//	}
//
//	if !dta1.VerifyRequest(req, dta1.VerifyConfig{Keys: store}) {
//	    // reject with 403
//	}
//
// Verification rebuilds the canonical request from exactly the headers
// named in the SignedHeaders field of the Authorization header. Headers
// added by intermediaries after signing therefore do not break
// verification, while a signer always commits to everything it controls
// at signing time. This asymmetry is part of the scheme.
//
// # Client Transport
//
// NewTransport creates an http.RoundTripper that signs all outgoing
// requests. Pass an *http.Transport to configure proxy, TLS, and
// timeout settings, or nil for defaults:
//
//	client := &http.Client{
//	    Transport: dta1.NewTransport(nil, dta1.SignConfig{Credential: cred}),
//	}
//
//	resp, err := client.Post("https://vendor.example.com/replenish", "application/json", body)
//
// # Server Middleware
//
// Middleware returns a handlers.MiddlewareFunc that verifies the
// signature on incoming requests and responds 403 Forbidden when
// verification fails:
//
//	mw, err := dta1.Middleware(dta1.MiddlewareConfig{
//	    Verify: dta1.VerifyConfig{Keys: store},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	handler = mw(handler)
//
// # Credentials
//
// Credentials are (secret key, public key) pairs. MemoryStore holds
// them in memory keyed by public key and can be bulk-loaded from a
// line-oriented text file where each line is
// "<secretKey> <publicKey>". The store is safe for concurrent readers
// once loaded.
package dta1
