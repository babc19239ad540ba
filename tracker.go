package sitemark

import "sync"

// siteKey is the internal seen-set key. The file part is an interner ID
// rather than the string itself, so the key is a fixed-shape composite:
// two distinct (file, line, col) triples can never fold into one key the
// way concatenated strings can ("a"|1|23 vs "a1"|2|3).
type siteKey struct {
	file uint32
	line int
	col  int
}

// Tracker remembers which sites it has been shown. Each instance owns its
// seen-set outright; instances share nothing. The set only grows over the
// tracker's lifetime — there is no reset, removal, enumeration or size
// query, deliberately: a scope that wants a clean slate constructs a new
// Tracker.
//
// The zero value is ready to use. Safe for concurrent use.
type Tracker struct {
	mu    sync.Mutex
	files map[string]uint32 // файл/токен -> интернированный ID
	seen  map[siteKey]struct{}
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// FirstTime reports whether site has never been presented to this tracker
// before, recording it as seen when so. The membership check and the
// insert are one critical section: of any number of concurrent calls with
// the same site, exactly one observes true.
//
// The operation is total — every site is valid, including ones with empty
// components — and it mutates the tracker only on the call that returns
// true.
func (t *Tracker) FirstTime(site Site) bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seen == nil {
		// Как в интернере: ID 0 зарезервирован за пустой строкой.
		t.files = map[string]uint32{"": 0}
		t.seen = make(map[siteKey]struct{})
	}

	id, ok := t.files[site.File]
	if !ok {
		id = uint32(len(t.files))
		t.files[site.File] = id
	}

	key := siteKey{file: id, line: site.Line, col: site.Col}
	if _, dup := t.seen[key]; dup {
		return false
	}
	t.seen[key] = struct{}{}
	return true
}

// FirstTimeHere is FirstTime keyed on the caller's own location. It is
// the no-argument form for call sites that just want "run this once":
//
//	if t.FirstTimeHere() {
//		showWelcome()
//	}
//
// The site is captured at the moment of the call, so the answer does not
// depend on where in a method body the check sits relative to any
// delegation to embedded or wrapped behavior.
func (t *Tracker) FirstTimeHere() bool {
	return t.FirstTime(HereSkip(1))
}
