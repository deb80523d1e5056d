package mathexpr

import "fmt"

// SyntaxError reports malformed expression text.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

// UndefinedError reports an identifier missing from the scope.
type UndefinedError struct {
	Name string
	Call bool // Used as a function rather than a value.
}

func (e *UndefinedError) Error() string {
	if e.Call {
		return fmt.Sprintf("undefined function %q", e.Name)
	}
	return fmt.Sprintf("undefined symbol %q", e.Name)
}

// ArityError reports a function called with the wrong number of arguments.
type ArityError struct {
	Name string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s takes %d argument(s), got %d", e.Name, e.Want, e.Got)
}
