package catalog

import "sync/atomic"

// Sequencer orders one session's overlapping catalog queries so a slow,
// superseded query cannot clobber the result of a newer one from the
// same session. Each issued query
// takes a token from Next; when its result arrives, Accept reports
// whether that token is still the latest (last write wins).
type Sequencer struct {
	seq atomic.Uint64
}

// Next reserves and returns the next query token.
func (s *Sequencer) Next() uint64 {
	return s.seq.Add(1)
}

// Accept reports whether token belongs to the most recently issued
// query. Results carrying a stale token must be dropped by the caller.
func (s *Sequencer) Accept(token uint64) bool {
	return token == s.seq.Load()
}
