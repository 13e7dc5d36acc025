package stage

import "time"

// TickSource emits a periodic refresh signal.
type TickSource interface {
	Subscribe(fn func())
}

// FrameTicker is a TickSource driven by a fixed-rate game loop: Advance is
// called once per update and subscribers fire every N updates.
type FrameTicker struct {
	every int
	n     int
	subs  []func()
}

// NewFrameTicker fires roughly every interval on a loop running at tps
// updates per second, and at least once per update.
func NewFrameTicker(interval time.Duration, tps int) *FrameTicker {
	every := 1
	if tps > 0 && interval > 0 {
		every = int(interval * time.Duration(tps) / time.Second)
	}
	if every < 1 {
		every = 1
	}
	return &FrameTicker{every: every}
}

func (t *FrameTicker) Subscribe(fn func()) {
	t.subs = append(t.subs, fn)
}

// Every reports how many updates pass between signals.
func (t *FrameTicker) Every() int { return t.every }

// Advance counts one update and signals subscribers on the first update and
// every Every() updates after it.
func (t *FrameTicker) Advance() {
	fire := t.n == 0
	t.n = (t.n + 1) % t.every
	if !fire {
		return
	}
	for _, fn := range t.subs {
		fn()
	}
}
