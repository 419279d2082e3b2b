package learn

import "time"

// Clock measures the time the application was running. Time spent while
// paused does not count.
type Clock struct {
	lastTime time.Time
	elapsed  time.Duration
	paused   bool
}

// Tick advances the clock to now and returns the elapsed time as well as
// the time since the previous tick. The first tick only starts the clock.
func (c *Clock) Tick(now time.Time) (elapsed, delta time.Duration) {
	if !c.lastTime.IsZero() {
		delta = now.Sub(c.lastTime)
	}

	c.lastTime = now

	if c.paused || delta < 0 {
		delta = 0
	}

	c.elapsed += delta

	return c.elapsed, delta
}

func (c *Clock) Paused() bool {
	return c.paused
}

func (c *Clock) SetPaused(paused bool) {
	c.paused = paused
}

// TogglePause flips the paused state and returns the new one.
func (c *Clock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}
