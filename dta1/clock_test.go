package dta1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock(t *testing.T) {
	now := SystemClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestFixedClock(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	local := time.Date(2011, 9, 9, 19, 36, 0, 0, loc)
	clock := FixedClock(local)

	assert.Equal(t, time.UTC, clock.Now().Location())
	assert.True(t, clock.Now().Equal(local))
	assert.Equal(t, clock.Now(), clock.Now())
}
