package sitemark

import (
	"strings"
	"testing"
)

func TestHereCapturesThisFile(t *testing.T) {
	site := Here()

	if !strings.HasSuffix(site.File, "capture_test.go") {
		t.Fatalf("expected this test file, got %q", site.File)
	}
	if site.Line <= 0 {
		t.Fatalf("captured line must be 1-based, got %d", site.Line)
	}
	if site.Col != 0 {
		t.Fatalf("runtime capture has no column, want 0, got %d", site.Col)
	}
}

func TestHereDistinguishesLines(t *testing.T) {
	a := Here()
	b := Here()

	if a == b {
		t.Fatalf("two textually distinct call lines produced one site: %v", a)
	}
	if a.File != b.File {
		t.Fatalf("same file expected, got %q and %q", a.File, b.File)
	}
}

func TestHereSkipRecordsHelperCaller(t *testing.T) {
	helper := func() Site { return HereSkip(1) }

	direct := Here()
	viaHelper := helper()

	if viaHelper.File != direct.File {
		t.Fatalf("HereSkip(1) must land in this file, got %q", viaHelper.File)
	}
	if viaHelper.Line != direct.Line+1 {
		t.Fatalf("helper call sits one line below the direct capture: want %d, got %d",
			direct.Line+1, viaHelper.Line)
	}
}

func TestHereSkipBeyondStack(t *testing.T) {
	if got := HereSkip(1 << 20); got != (Site{}) {
		t.Fatalf("skipping past the stack must yield the zero site, got %v", got)
	}
}

func TestFirstTimeHereLoopedCallSite(t *testing.T) {
	tr := NewTracker()

	// One textual call site, many executions: the site is the same every
	// iteration, so exactly the first run wins.
	trues := 0
	for i := 0; i < 10; i++ {
		if tr.FirstTimeHere() {
			trues++
		}
	}
	if trues != 1 {
		t.Fatalf("looped call site reported first %d times, want 1", trues)
	}
}

func TestFirstTimeHereDistinctCallSites(t *testing.T) {
	tr := NewTracker()

	first := tr.FirstTimeHere()
	second := tr.FirstTimeHere()

	if !first || !second {
		t.Fatalf("two distinct call lines must each be first: %v, %v", first, second)
	}
	if tr.FirstTimeHere() != true {
		t.Fatal("a third distinct line is also first")
	}
}

func TestSiteStringRendering(t *testing.T) {
	cases := []struct {
		site Site
		want string
	}{
		{At("f", 1, 1), "f:1:1"},
		{Token("welcome"), "welcome:0:0"},
		{Site{}, ":0:0"},
	}
	for _, c := range cases {
		if got := c.site.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
