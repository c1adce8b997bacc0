// Package cerrors defines the typed errors produced while building and
// running a table-driven parser: malformed grammar sources, conflicts the
// arbiter could not resolve, lexical errors, syntax errors from the parse
// driver, and mismatches between a persisted table and the grammar it was
// built from.
package cerrors

import "fmt"

// Kind identifies which of the error categories an error belongs to, for
// callers (notably the CLI) that need to map an error to an exit code
// without string-matching messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindGrammarMalformed
	KindUnresolvableConflict
	KindLexError
	KindSyntaxError
	KindInternalGoto
	KindTableMismatch
)

func (k Kind) String() string {
	switch k {
	case KindGrammarMalformed:
		return "GrammarMalformed"
	case KindUnresolvableConflict:
		return "UnresolvableConflict"
	case KindLexError:
		return "LexError"
	case KindSyntaxError:
		return "SyntaxError"
	case KindInternalGoto:
		return "InternalGoto"
	case KindTableMismatch:
		return "TableMismatch"
	default:
		return "Unknown"
	}
}

// buildError is the concrete error type behind every constructor in this
// package. It carries a Kind for programmatic dispatch alongside the usual
// Error() string, and can wrap an underlying cause.
type buildError struct {
	kind Kind
	msg  string
	wrap error
}

func (e *buildError) Error() string { return e.msg }
func (e *buildError) Unwrap() error { return e.wrap }

// KindOf returns the Kind of err if it (or something it wraps) is a
// cerrors error, and KindUnknown otherwise.
func KindOf(err error) Kind {
	var be *buildError
	for err != nil {
		if b, ok := err.(*buildError); ok {
			be = b
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if be == nil {
		return KindUnknown
	}
	return be.kind
}

func GrammarMalformed(format string, a ...interface{}) error {
	return &buildError{kind: KindGrammarMalformed, msg: fmt.Sprintf(format, a...)}
}

func UnresolvableConflict(format string, a ...interface{}) error {
	return &buildError{kind: KindUnresolvableConflict, msg: fmt.Sprintf(format, a...)}
}

func LexError(format string, a ...interface{}) error {
	return &buildError{kind: KindLexError, msg: fmt.Sprintf(format, a...)}
}

func SyntaxError(format string, a ...interface{}) error {
	return &buildError{kind: KindSyntaxError, msg: fmt.Sprintf(format, a...)}
}

func InternalGoto(format string, a ...interface{}) error {
	return &buildError{kind: KindInternalGoto, msg: fmt.Sprintf(format, a...)}
}

func TableMismatch(format string, a ...interface{}) error {
	return &buildError{kind: KindTableMismatch, msg: fmt.Sprintf(format, a...)}
}

// Wrap attaches cause to a new error of the given kind, so callers can both
// Unwrap to the original error and dispatch on Kind.
func Wrap(kind Kind, cause error, format string, a ...interface{}) error {
	return &buildError{kind: kind, msg: fmt.Sprintf(format, a...), wrap: cause}
}

// ExitCode maps a Kind to the process exit code the CLI binaries return.
func (k Kind) ExitCode() int {
	switch k {
	case KindGrammarMalformed:
		return 2
	case KindUnresolvableConflict:
		return 3
	case KindLexError:
		return 4
	case KindSyntaxError:
		return 5
	case KindInternalGoto:
		return 6
	case KindTableMismatch:
		return 7
	default:
		return 1
	}
}
