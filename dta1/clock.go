package dta1

import "time"

// Clock supplies the current instant to signing and verification.
// It exists so tests can pin or sequence time; production code uses
// SystemClock.
type Clock interface {
	// Now returns the current instant in UTC.
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a Clock backed by time.Now. It is the default
// when a config leaves Clock nil.
func SystemClock() Clock { return systemClock{} }

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// FixedClock returns a Clock that always reports t in UTC. Intended
// for tests and offline signature computation.
func FixedClock(t time.Time) Clock { return fixedClock{t: t.UTC()} }
