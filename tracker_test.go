package sitemark

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestFirstTimeSingleTrue(t *testing.T) {
	tr := NewTracker()
	site := At("f", 1, 1)

	if !tr.FirstTime(site) {
		t.Fatal("first presentation must report true")
	}

	for i := 0; i < 100; i++ {
		if tr.FirstTime(site) {
			t.Fatalf("presentation %d reported true again", i+2)
		}
	}
}

func TestFirstTimeIndependentSites(t *testing.T) {
	tr := NewTracker()

	if !tr.FirstTime(At("f", 1, 1)) {
		t.Fatal("f:1:1 must be first")
	}
	if !tr.FirstTime(At("f", 2, 1)) {
		t.Fatal("f:2:1 is a different site and must be independently first")
	}
	if tr.FirstTime(At("f", 1, 1)) || tr.FirstTime(At("f", 2, 1)) {
		t.Fatal("repeats must report false for both sites")
	}
}

func TestFirstTimeIndependentInstances(t *testing.T) {
	a := NewTracker()
	b := NewTracker()
	site := At("f", 1, 1)

	if !a.FirstTime(site) {
		t.Fatal("instance a must see the site as first")
	}
	if !b.FirstTime(site) {
		t.Fatal("instance b shares nothing with a and must also see it as first")
	}
}

func TestFirstTimeOrderIndependence(t *testing.T) {
	k1 := At("f", 1, 1)
	k2 := At("g", 7, 3)

	orders := [][]Site{
		{k1, k2, k1, k2},
		{k2, k1, k2, k1},
		{k1, k1, k2, k2},
		{k2, k2, k1, k1},
	}
	for _, order := range orders {
		tr := NewTracker()
		firsts := map[Site]int{}
		for _, s := range order {
			if tr.FirstTime(s) {
				firsts[s]++
			}
		}
		if firsts[k1] != 1 || firsts[k2] != 1 {
			t.Fatalf("order %v: expected exactly one first per site, got %v", order, firsts)
		}
	}
}

func TestFirstTimeZeroValue(t *testing.T) {
	var tr Tracker

	if !tr.FirstTime(At("f", 1, 1)) {
		t.Fatal("zero-value tracker must start empty")
	}
	if tr.FirstTime(At("f", 1, 1)) {
		t.Fatal("zero-value tracker must remember sites")
	}
}

func TestFirstTimeNilTracker(t *testing.T) {
	var tr *Tracker

	// Нулевой трекер ничего не считает первым.
	if tr.FirstTime(At("f", 1, 1)) {
		t.Fatal("nil tracker must never report first")
	}
}

func TestFirstTimeAcceptsEmptyComponents(t *testing.T) {
	tr := NewTracker()

	cases := []Site{
		{},
		At("", 0, 0), // same as the zero site, must be a repeat below
		At("", 1, 0),
		At("", 0, 1),
		Token(""),
	}

	if !tr.FirstTime(cases[0]) {
		t.Fatal("the zero site is a valid distinct site")
	}
	if tr.FirstTime(cases[1]) {
		t.Fatal("At(\"\", 0, 0) equals the zero site and must repeat")
	}
	if tr.FirstTime(cases[4]) {
		t.Fatal("Token(\"\") equals the zero site and must repeat")
	}
	if !tr.FirstTime(cases[2]) || !tr.FirstTime(cases[3]) {
		t.Fatal("empty-file sites with differing line/col are distinct")
	}
}

func TestCollisionResistantKeys(t *testing.T) {
	// Adversarial pair: under naive "file+line+col" string concatenation
	// both would key as "a123".
	tr := NewTracker()

	if !tr.FirstTime(At("a", 1, 23)) {
		t.Fatal("a:1:23 must be first")
	}
	if !tr.FirstTime(At("a1", 2, 3)) {
		t.Fatal("a1:2:3 is a distinct triple and must be first")
	}

	more := []struct{ a, b Site }{
		{At("f", 11, 1), At("f1", 1, 1)},
		{At("f:1", 1, 1), At("f", 1, 11)},
		{At("x", 12, 34), At("x1", 23, 4)},
	}
	for _, pair := range more {
		fresh := NewTracker()
		if !fresh.FirstTime(pair.a) || !fresh.FirstTime(pair.b) {
			t.Fatalf("triples %v and %v collided", pair.a, pair.b)
		}
	}
}

func TestTokenDisjointFromCapturedSites(t *testing.T) {
	tr := NewTracker()

	// A token whose text matches a file path still cannot alias any
	// captured site: captured lines start at 1, token sites sit at line 0.
	if !tr.FirstTime(Token("app/onboarding.go")) {
		t.Fatal("token site must be first")
	}
	if !tr.FirstTime(At("app/onboarding.go", 1, 0)) {
		t.Fatal("captured-shape site with the same text must stay distinct")
	}
}

func TestFirstTimeConcurrentSameSite(t *testing.T) {
	const callers = 100
	tr := NewTracker()
	site := At("f", 1, 1)

	var (
		start sync.WaitGroup
		done  sync.WaitGroup
		trues atomic.Int64
	)
	start.Add(1)
	done.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer done.Done()
			start.Wait()
			if tr.FirstTime(site) {
				trues.Add(1)
			}
		}()
	}
	start.Done()
	done.Wait()

	if got := trues.Load(); got != 1 {
		t.Fatalf("expected exactly 1 first among %d concurrent callers, got %d", callers, got)
	}
}

func TestFirstTimeConcurrentDistinctSites(t *testing.T) {
	const (
		workers = 16
		sites   = 64
	)
	tr := NewTracker()

	var (
		done   sync.WaitGroup
		firsts [sites]atomic.Int64
	)
	done.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer done.Done()
			for i := 0; i < sites; i++ {
				if tr.FirstTime(At("f", i+1, 0)) {
					firsts[i].Add(1)
				}
			}
		}()
	}
	done.Wait()

	for i := range firsts {
		if got := firsts[i].Load(); got != 1 {
			t.Fatalf("site f:%d:0 reported first %d times, want 1", i+1, got)
		}
	}
}

func BenchmarkFirstTimeRepeat(b *testing.B) {
	tr := NewTracker()
	site := At("f", 1, 1)
	tr.FirstTime(site)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if tr.FirstTime(site) {
			b.Fatal("repeat reported first")
		}
	}
}
