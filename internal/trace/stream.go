package trace

import (
	"io"
	"os"
	"sync"
)

// StreamSink writes events immediately to an io.Writer.
type StreamSink struct {
	mu     sync.Mutex
	w      io.Writer
	format Format
}

// NewStreamSink creates a StreamSink writing in the given format.
func NewStreamSink(w io.Writer, format Format) *StreamSink {
	return &StreamSink{w: w, format: format}
}

// Emit writes an event to the output. Write errors are dropped: tracing
// must never disrupt the run it observes.
func (s *StreamSink) Emit(ev Event) {
	ev.Seq = nextSeq()
	data := FormatEvent(ev, s.format)

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.w.Write(data)
}

// Flush ensures all buffered data is written.
// For StreamSink this defers to the writer's own Flush, if any.
func (s *StreamSink) Flush() error {
	if flusher, ok := s.w.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}

// Close flushes and closes the writer if it implements io.Closer. The
// process's own streams are left open: a sink handed os.Stderr for "-"
// outputs does not own it, and closing it would swallow everything the
// process prints afterwards.
func (s *StreamSink) Close() error {
	if err := s.Flush(); err != nil {
		return err
	}
	if s.w == io.Writer(os.Stderr) || s.w == io.Writer(os.Stdout) {
		return nil
	}
	if closer, ok := s.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Enabled always returns true.
func (s *StreamSink) Enabled() bool { return true }
