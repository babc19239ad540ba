package trace

// Sink receives tracker check observations.
type Sink interface {
	// Emit records one observation. Must be goroutine-safe.
	Emit(ev Event)

	// Flush ensures all buffered events are written.
	Flush() error

	// Close flushes and releases resources.
	Close() error

	// Enabled returns false only for sinks that drop everything.
	Enabled() bool
}

// nopSink is a no-op implementation for zero overhead when tracing is off.
type nopSink struct{}

// Emit does nothing.
func (nopSink) Emit(Event) {}

// Flush does nothing.
func (nopSink) Flush() error { return nil }

// Close does nothing.
func (nopSink) Close() error { return nil }

// Enabled always returns false.
func (nopSink) Enabled() bool { return false }

// Nop is the package-level singleton nop sink.
var Nop Sink = nopSink{}
