package sitemark

import "fmt"

// Site identifies a fixed location in source code: a file (or a
// caller-supplied token), a 1-based line and a column. Sites are plain
// comparable values; two sites name the same call site exactly when all
// three parts are equal.
//
// Empty or odd-looking components are not an error — they are simply
// distinct sites like any other.
type Site struct {
	File string
	Line int
	Col  int
}

// At builds a site from an explicit file/line/column triple.
func At(file string, line, col int) Site {
	return Site{File: file, Line: line, Col: col}
}

// Token builds a site from a manually chosen token, for tracking points
// where automatic caller capture is not available or not wanted.
//
// Picking a unique token per tracking point is a manual discipline: two
// points that reuse one token are one site as far as a tracker is
// concerned. Token sites carry line 0; captured lines are 1-based, so a
// token can never alias a captured site whose file path equals the token
// text.
func Token(tok string) Site {
	return Site{File: tok}
}

// String renders "file:line:col" for humans. Display only — tracker keys
// are structured values and never go through this.
func (s Site) String() string {
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Col)
}
