package sic

import "fmt"

// ParseError reports a malformed source buffer: a required name began
// with a reserved delimiter, or the input ended unexpectedly mid-token.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at byte %d: %s", e.Offset, e.Message)
}

// UnboundVariableError reports a Var occurrence whose name never
// resolved to a binder during encoding.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

// NonAffineUseError reports a Var occurrence whose binder was already
// connected by an earlier occurrence — the calculus is affine, so every
// binder may be used at most once.
type NonAffineUseError struct {
	Name string
}

func (e *NonAffineUseError) Error() string {
	return fmt.Sprintf("variable used more than once: %s", e.Name)
}
