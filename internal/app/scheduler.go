package app

import "time"

// frameScheduler is the engine's tick source. It only exposes a channel
// while started; the main loop selects on it and calls fire, so every tick
// runs on the loop goroutine and none can run after Stop.
type frameScheduler struct {
	interval time.Duration
	ticker   *time.Ticker
	tick     func()
}

func newFrameScheduler(interval time.Duration) *frameScheduler {
	return &frameScheduler{interval: interval}
}

// Start begins ticking, replacing any previous schedule
func (s *frameScheduler) Start(tick func()) {
	s.Stop()
	s.tick = tick
	s.ticker = time.NewTicker(s.interval)
}

// Stop cancels the schedule
func (s *frameScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

// C returns the tick channel, nil while stopped
func (s *frameScheduler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

// fire runs one scheduled tick
func (s *frameScheduler) fire() {
	if s.ticker != nil && s.tick != nil {
		s.tick()
	}
}
