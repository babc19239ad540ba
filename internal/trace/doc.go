// Package trace streams first/repeat observations made against a tracker
// during demo and exercise runs. The library itself never emits trace
// events; the CLI wraps tracker checks and feeds sinks from the outside,
// which keeps the tracker contract at exactly one operation.
//
// Three sinks exist: a stream sink that writes each event immediately
// (text or NDJSON), a ring sink that keeps the last N events in memory
// for a post-run dump, and a nop sink for when tracing is off. A multi
// sink fans out to several of them.
package trace
