package parallel

// Signal is a single-slot latch carrying "ready" from one goroutine to another.
//
// Notify fills the slot, Wait empties it. A Signal connects exactly one producer
// with exactly one consumer; the slot makes Notify non-blocking as long as the
// consumer has taken the previous notification. Wait doubles as the reset, so a
// Signal is reusable across iterations without extra bookkeeping.
type Signal struct {
	ch chan struct{}
}

// NewSignal returns an empty Signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// NewReadySignal returns a Signal whose slot is already full.
// Pipelines use it for "buffer free" edges that start out granted.
func NewReadySignal() *Signal {
	s := NewSignal()
	s.ch <- struct{}{}

	return s
}

// Notify fills the slot. It blocks while a previous notification is still pending.
func (s *Signal) Notify() { s.ch <- struct{}{} }

// Wait blocks until the slot is full and empties it.
func (s *Signal) Wait() { <-s.ch }
