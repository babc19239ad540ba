package sitemark

import "runtime"

// Here captures the calling line as a site. The column is recorded as 0:
// the Go runtime exposes file and line only. Call sites that need
// sub-line granularity use At or Token instead.
func Here() Site {
	return HereSkip(1)
}

// HereSkip captures a site skip frames above the caller, for helpers that
// want to record their own caller's location rather than themselves.
// HereSkip(0) is Here.
func HereSkip(skip int) Site {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		// Глубже стека, чем есть кадров — отдаём пустой сайт.
		return Site{}
	}
	return Site{File: file, Line: line}
}
