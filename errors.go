package tcss

import "fmt"

// SyntaxError is a structural stylesheet failure: an unclosed brace or
// comment, an unparseable selector. Bad declaration values are not
// syntax errors; they skip the one declaration.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("tcss: syntax error at %d:%d: %s", e.Line, e.Column, e.Message)
}
