// Package observ carries the small observability helpers of the CLI:
// phase timing for exercise runs and their serializable report form.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase is one timed stage of an exercise run (corpus, run, verify).
type Phase struct {
	Name  string
	Dur   time.Duration
	Note  string
	start time.Time
}

// Timer accumulates the stages of a run in the order they begin.
// Not goroutine-safe: one run drives one timer from one goroutine.
type Timer struct {
	phases []Phase
}

// NewTimer returns an empty timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Phase times fn as a named stage. The returned note, if any, is attached
// to the stage in summaries and reports.
func (t *Timer) Phase(name string, fn func() string) {
	p := Phase{Name: name, start: time.Now()}
	note := fn()
	p.Dur = time.Since(p.start)
	p.Note = note
	t.phases = append(t.phases, p)
}

// Summary renders all stages for the --timings flag.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-12s %8.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // ")
			b.WriteString(p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-12s %8.2f ms\n", "total", report.TotalMS)
	return b.String()
}

// PhaseReport is the serializable form of one stage.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates stage durations in milliseconds.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report snapshots the timer into its serializable form.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: float64(phase.Dur) / float64(time.Millisecond),
			Note:       phase.Note,
		}
	}
	report.TotalMS = float64(total) / float64(time.Millisecond)
	return report
}
