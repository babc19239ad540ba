package trace

import (
	"sync/atomic"
	"time"
)

// Kind says what a tracker check observed.
type Kind uint8

const (
	// KindFirst marks the one check that saw a site for the first time.
	KindFirst Kind = iota + 1
	// KindRepeat marks every later check of an already-seen site.
	KindRepeat
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindFirst:
		return "first"
	case KindRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Event is a single observation of a tracker check.
type Event struct {
	Time   time.Time // wall-clock timestamp
	Seq    uint64    // global sequence number (monotonic)
	Kind   Kind      // first or repeat
	Site   string    // rendered call site, display form
	Worker int       // ordinal of the checking goroutine, -1 if unknown
}

var seqCounter atomic.Uint64

// nextSeq returns the next global sequence number.
func nextSeq() uint64 {
	return seqCounter.Add(1)
}
