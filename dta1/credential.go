package dta1

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Credential is an immutable (secret key, public key) pair. The public
// key identifies the credential on the wire; the secret key never
// leaves the signer and verifier.
type Credential struct {
	SecretKey string
	PublicKey string
}

// NewCredential creates a Credential. Both keys must be non-empty.
func NewCredential(secretKey, publicKey string) (Credential, error) {
	if secretKey == "" {
		return Credential{}, fmt.Errorf("%w: secret key must not be empty", ErrInvalidArgument)
	}

	if publicKey == "" {
		return Credential{}, fmt.Errorf("%w: public key must not be empty", ErrInvalidArgument)
	}

	return Credential{SecretKey: secretKey, PublicKey: publicKey}, nil
}

// KeyStore resolves a public key to a Credential. It is the only
// capability the verification path needs, so alternative backing
// stores (database, secrets manager) can be substituted for
// MemoryStore without touching the signer.
type KeyStore interface {
	// Lookup returns the credential for publicKey and whether it was
	// found. It must not fail in any other way.
	Lookup(publicKey string) (Credential, bool)
}

// MemoryStore is an in-memory KeyStore keyed by public key. It is safe
// for concurrent use; the intended pattern is bulk load at startup,
// then concurrent lookups while serving.
type MemoryStore struct {
	mu    sync.RWMutex
	creds map[string]Credential
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		creds: make(map[string]Credential),
	}
}

// Add inserts cred keyed by its public key, replacing any existing
// credential with the same public key.
func (s *MemoryStore) Add(cred Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds[cred.PublicKey] = cred
}

// Remove deletes the credential for publicKey, if present.
func (s *MemoryStore) Remove(publicKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.creds, publicKey)
}

// Len returns the number of stored credentials.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.creds)
}

// Get returns the credential for publicKey. It returns
// ErrCredentialNotFound when absent; use Lookup on paths that must not
// fail.
func (s *MemoryStore) Get(publicKey string) (Credential, error) {
	cred, ok := s.Lookup(publicKey)
	if !ok {
		return Credential{}, fmt.Errorf("%w: %s", ErrCredentialNotFound, publicKey)
	}

	return cred, nil
}

// Lookup implements KeyStore.
func (s *MemoryStore) Lookup(publicKey string) (Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cred, ok := s.creds[publicKey]

	return cred, ok
}

// LoadText parses a line-oriented credentials listing and adds every
// credential to the store. Each non-blank line holds at least two
// whitespace-separated tokens: the secret key, then the public key.
// Tokens past the second are ignored. Blank and whitespace-only lines
// are skipped.
//
// Parsing is all-or-nothing: an empty listing or any line with fewer
// than two tokens returns ErrInvalidCredentialFormat and leaves the
// store untouched. A public key appearing on more than one line keeps
// the last occurrence, matching Add's replace semantics.
func (s *MemoryStore) LoadText(contents string) error {
	var parsed []Credential

	for i, line := range strings.Split(contents, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if len(fields) < 2 {
			return fmt.Errorf("%w: line %d has %d tokens, want at least 2", ErrInvalidCredentialFormat, i+1, len(fields))
		}

		parsed = append(parsed, Credential{SecretKey: fields[0], PublicKey: fields[1]})
	}

	if len(parsed) == 0 {
		return fmt.Errorf("%w: no credentials found", ErrInvalidCredentialFormat)
	}

	for _, cred := range parsed {
		s.Add(cred)
	}

	return nil
}

// LoadReader reads r to the end and delegates to LoadText.
func (s *MemoryStore) LoadReader(r io.Reader) error {
	if r == nil {
		return fmt.Errorf("%w: reader must not be nil", ErrInvalidArgument)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	return s.LoadText(string(data))
}

// LoadFile reads the file at path and delegates to LoadText. A missing
// or unreadable path returns ErrInvalidArgument.
func (s *MemoryStore) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: credentials file %q: %v", ErrInvalidArgument, path, err)
	}

	return s.LoadText(string(data))
}
