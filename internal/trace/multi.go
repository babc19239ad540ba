package trace

import "errors"

// MultiSink fans every event out to several sinks.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink combines sinks; nop members are skipped. When nothing
// remains it returns Nop, so callers can always compose unconditionally.
func NewMultiSink(sinks ...Sink) Sink {
	kept := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s == nil || !s.Enabled() {
			continue
		}
		kept = append(kept, s)
	}
	switch len(kept) {
	case 0:
		return Nop
	case 1:
		return kept[0]
	default:
		return &MultiSink{sinks: kept}
	}
}

// Emit forwards the event to every member sink.
func (m *MultiSink) Emit(ev Event) {
	for _, s := range m.sinks {
		s.Emit(ev)
	}
}

// Flush flushes every member sink, joining errors.
func (m *MultiSink) Flush() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every member sink, joining errors.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Enabled always returns true: empty multis never get constructed.
func (m *MultiSink) Enabled() bool { return true }
