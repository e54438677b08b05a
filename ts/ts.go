// Package ts gives divvy timestamps fit for people: local zone, whole
// seconds.
package ts

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock hands out session timestamps.  It wraps a clockwork.Clock so tests
// can hold time still.
type Clock struct {
	inner clockwork.Clock
}

func NewRealClock() *Clock {
	return &Clock{inner: clockwork.NewRealClock()}
}

// NewFakeClockAt is for tests that need time to hold still until told
// otherwise.  Advance the returned fake to move Now.
func NewFakeClockAt(t time.Time) (*Clock, *clockwork.FakeClock) {
	fake := clockwork.NewFakeClockAt(t)
	return &Clock{inner: fake}, fake
}

// Now is the wrapped clock's time in the local zone, truncated to the
// second.
func (c *Clock) Now() time.Time {
	return c.inner.Now().Local().Truncate(time.Second)
}
