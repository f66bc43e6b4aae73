package types

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

type ErrorTag string

const (
	ReservedOperatorErrorTag     ErrorTag = "ReservedOperator"
	InvalidSyntaxErrorTag        ErrorTag = "InvalidSyntax"
	InvalidDeclarationErrorTag   ErrorTag = "InvalidDeclaration"
	InvalidValueErrorTag         ErrorTag = "InvalidValue"
	UnknownTokenErrorTag         ErrorTag = "UnknownToken"
	InsufficientOperandsErrorTag ErrorTag = "InsufficientOperands"
	InvalidExpressionErrorTag    ErrorTag = "InvalidExpression"
	DivisionByZeroErrorTag       ErrorTag = "DivisionByZero"
)

type Exception interface {
	error
	Exception() any
}

// Error is the failure raised by every stage of a parse. Err holds the
// human readable message, Extra the structured context (line, token,
// stack) for machine consumers.
type Error struct {
	Tag   ErrorTag
	Err   error
	Extra map[string]any
}

var _ Exception = (*Error)(nil)

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Tag)
	}

	var b strings.Builder
	b.WriteString(string(e.Tag))
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Exception() any {
	tags := []any{e.Tag}
	for err := errors.Unwrap(error(e)); err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*Error); ok {
			tags = append(tags, e.Tag)
		}
	}

	o := map[string]any{
		"tags": tags,
	}
	if e.Err != nil {
		o["message"] = e.Err.Error()
	}
	if len(e.Extra) != 0 {
		o = lo.Assign(o, e.Extra)
	}
	return o
}

// IsTag reports whether any *Error in err's chain carries tag.
func IsTag(err error, tag ErrorTag) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*Error); ok && e.Tag == tag {
			return true
		}
	}
	return false
}

// WithExtra returns err with key=value merged into the Extra of its
// outermost *Error. Errors without one are returned unchanged.
func WithExtra(err error, key string, value any) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	if e.Extra == nil {
		e.Extra = map[string]any{}
	}
	if _, exists := e.Extra[key]; !exists {
		e.Extra[key] = value
	}
	return err
}
