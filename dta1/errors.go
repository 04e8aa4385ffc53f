package dta1

import "errors"

// Configuration errors.
var (
	// ErrInvalidArgument is returned when a caller-supplied argument is
	// missing or unusable, such as an empty credential field or an
	// unreadable credentials file path.
	ErrInvalidArgument = errors.New("dta1: invalid argument")

	// ErrInvalidCredentialFormat is returned when a credentials source
	// cannot be parsed: an empty file, or a line with fewer than two
	// whitespace-separated tokens.
	ErrInvalidCredentialFormat = errors.New("dta1: invalid credential format")

	// ErrNoKeyStore is returned when MiddlewareConfig has no key store
	// configured.
	ErrNoKeyStore = errors.New("dta1: key store must not be nil")
)

// Lookup errors.
var (
	// ErrCredentialNotFound is returned by MemoryStore.Get when no
	// credential exists for the given public key. The verification path
	// never returns it; an unknown key simply fails verification.
	ErrCredentialNotFound = errors.New("dta1: credential not found")
)

// Signing errors.
var (
	// ErrSigningFailed wraps runtime faults encountered while computing
	// a signature, such as a request with no parseable URL or an
	// unreadable body.
	ErrSigningFailed = errors.New("dta1: signing failed")
)
