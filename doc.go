// Package sitemark answers one question: has this point in the program
// been reached before? It exists so that "first execution only" logic can
// live at arbitrary call sites without hand-declared boolean flags and
// without caring where in an overridden or delegating method body the
// check happens to run.
//
// A Tracker owns an isolated set of seen call sites. The sole operation,
// FirstTime, is an atomic test-and-set: the first presentation of a site
// to a given tracker reports true and records it, every later presentation
// reports false. The set only grows; there is no reset, enumeration or
// removal — a fresh scope gets a fresh Tracker.
//
//	type onboarding struct {
//		seen sitemark.Tracker
//	}
//
//	func (o *onboarding) screenShown() {
//		if o.seen.FirstTimeHere() {
//			// runs once per onboarding value, no matter the call path
//		}
//	}
//
// Trackers are safe for concurrent use. There is no package-level tracker:
// whatever scope wants isolated first-time semantics constructs, owns and
// discards its own instance.
package sitemark
