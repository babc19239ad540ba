package stress

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"sitemark"
	"sitemark/internal/observ"
	"sitemark/internal/trace"
)

// Status describes a worker's progress through the run.
type Status uint8

const (
	// StatusQueued means the worker has not started yet.
	StatusQueued Status = iota + 1
	// StatusRunning means the worker is making passes over the corpus.
	StatusRunning
	// StatusDone means the worker finished all its rounds.
	StatusDone
)

// Event is one progress update, keyed by worker ordinal.
type Event struct {
	Worker int
	Status Status
}

// Sink receives progress events during a run.
type Sink interface {
	Publish(Event)
}

// ChannelSink forwards progress events into a channel, for the TUI.
type ChannelSink struct {
	Ch chan<- Event
}

// Publish sends the event. The channel must be buffered generously or
// drained promptly; the runner blocks on it.
func (s ChannelSink) Publish(ev Event) {
	s.Ch <- ev
}

// Options configures a run beyond its profile.
type Options struct {
	Profile  Profile
	Progress Sink       // optional
	Trace    trace.Sink // optional, defaults to trace.Nop
}

// Report is the outcome of one exercise run.
type Report struct {
	Profile Profile       `json:"profile"`
	Checks  int           `json:"checks"`  // tracker checks performed
	Firsts  int           `json:"firsts"`  // checks that reported first
	Repeats int           `json:"repeats"` // checks that reported repeat
	Timing  observ.Report `json:"timings"`
}

// Run exercises one shared tracker per Options and verifies the outcome:
// exactly one first per site across all workers and rounds, everything
// else a repeat. A verification failure is returned as an error — it
// means the tracker's test-and-set is broken, not the run.
func Run(ctx context.Context, opts Options) (Report, error) {
	if err := opts.Profile.Validate(); err != nil {
		return Report{}, err
	}
	sink := opts.Trace
	if sink == nil {
		sink = trace.Nop
	}

	p := opts.Profile
	timer := observ.NewTimer()

	var corpus []sitemark.Site
	timer.Phase("corpus", func() string {
		corpus = Corpus(p.Sites)
		return fmt.Sprintf("%d sites", len(corpus))
	})

	if opts.Progress != nil {
		for w := 0; w < p.Workers; w++ {
			opts.Progress.Publish(Event{Worker: w, Status: StatusQueued})
		}
	}

	tracker := sitemark.NewTracker()
	firsts := make([]atomic.Int64, p.Sites)

	var runErr error
	timer.Phase("run", func() string {
		g, ctx := errgroup.WithContext(ctx)
		for w := 0; w < p.Workers; w++ {
			w := w
			g.Go(func() error {
				if opts.Progress != nil {
					opts.Progress.Publish(Event{Worker: w, Status: StatusRunning})
				}
				for r := 0; r < p.Rounds; r++ {
					if err := ctx.Err(); err != nil {
						return err
					}
					for i, site := range corpus {
						if tracker.FirstTime(site) {
							firsts[i].Add(1)
							if sink.Enabled() {
								sink.Emit(trace.Event{
									Time: time.Now(), Kind: trace.KindFirst,
									Site: site.String(), Worker: w,
								})
							}
						} else if sink.Enabled() {
							sink.Emit(trace.Event{
								Time: time.Now(), Kind: trace.KindRepeat,
								Site: site.String(), Worker: w,
							})
						}
					}
				}
				if opts.Progress != nil {
					opts.Progress.Publish(Event{Worker: w, Status: StatusDone})
				}
				return nil
			})
		}
		runErr = g.Wait()
		return fmt.Sprintf("%d workers x %d rounds", p.Workers, p.Rounds)
	})
	if runErr != nil {
		return Report{}, runErr
	}

	timer.Phase("verify", func() string {
		for i := range firsts {
			if got := firsts[i].Load(); got != 1 {
				runErr = fmt.Errorf("site %s reported first %d times, want exactly 1",
					corpus[i], got)
				return "failed"
			}
		}
		return "every site first exactly once"
	})
	if runErr != nil {
		return Report{}, runErr
	}

	checks := p.Checks()
	return Report{
		Profile: p,
		Checks:  checks,
		Firsts:  p.Sites,
		Repeats: checks - p.Sites,
		Timing:  timer.Report(),
	}, nil
}

// Corpus builds n distinct synthetic call sites spread over virtual
// files, 16 lines per file. The file names end in their index digits, so
// large corpora contain triples that fold together under naive string
// concatenation of the parts ("corpus/f1" line 12 vs "corpus/f11" line 2)
// and a run doubles as a collision check on the key encoding.
func Corpus(n int) []sitemark.Site {
	sites := make([]sitemark.Site, n)
	for i := range sites {
		file := fmt.Sprintf("corpus/f%d", i/16)
		sites[i] = sitemark.At(file, i%16+1, 0)
	}
	return sites
}
