package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerPhasesInOrder(t *testing.T) {
	tm := NewTimer()
	tm.Phase("corpus", func() string { return "64 sites" })
	tm.Phase("run", func() string {
		time.Sleep(time.Millisecond)
		return ""
	})
	tm.Phase("verify", func() string { return "ok" })

	report := tm.Report()
	if len(report.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(report.Phases))
	}
	wantNames := []string{"corpus", "run", "verify"}
	for i, p := range report.Phases {
		if p.Name != wantNames[i] {
			t.Errorf("phase %d: name %q, want %q", i, p.Name, wantNames[i])
		}
	}
	if report.Phases[1].DurationMS <= 0 {
		t.Errorf("run phase recorded no time: %v", report.Phases[1].DurationMS)
	}
	if report.TotalMS < report.Phases[1].DurationMS {
		t.Errorf("total %.2fms below run phase %.2fms", report.TotalMS, report.Phases[1].DurationMS)
	}
}

func TestTimerEmptyReport(t *testing.T) {
	tm := NewTimer()
	report := tm.Report()
	if report.TotalMS != 0 || len(report.Phases) != 0 {
		t.Fatalf("empty timer must produce empty report, got %+v", report)
	}
}

func TestTimerSummaryMentionsNotes(t *testing.T) {
	tm := NewTimer()
	tm.Phase("corpus", func() string { return "8 sites" })

	summary := tm.Summary()
	if !strings.Contains(summary, "corpus") || !strings.Contains(summary, "8 sites") {
		t.Fatalf("summary missing phase or note:\n%s", summary)
	}
	if !strings.Contains(summary, "total") {
		t.Fatalf("summary missing total line:\n%s", summary)
	}
}
