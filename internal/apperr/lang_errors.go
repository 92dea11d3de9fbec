package apperr

import "errors"

// Kind classifies errors produced while evaluating a statement.
type Kind string

const (
	KindLexical       Kind = "lexical"
	KindSyntax        Kind = "syntax"
	KindType          Kind = "type"
	KindEncoding      Kind = "encoding"
	KindUnknownMethod Kind = "unknown_method"
)

var kindTitles = map[Kind]string{
	KindLexical:       "lexical error",
	KindSyntax:        "syntax error",
	KindType:          "type error",
	KindEncoding:      "encoding error",
	KindUnknownMethod: "unknown method",
}

// Error is a language error. Message is surfaced to the caller verbatim.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Title is a short human label for the error kind.
func (e *Error) Title() string {
	if t, ok := kindTitles[e.Kind]; ok {
		return t
	}
	return string(e.Kind)
}

func NewLexical(msg string) *Error {
	return &Error{Kind: KindLexical, Message: msg}
}

func NewSyntax(msg string) *Error {
	return &Error{Kind: KindSyntax, Message: msg}
}

func NewType(msg string) *Error {
	return &Error{Kind: KindType, Message: msg}
}

func NewEncoding(msg string, err error) *Error {
	return &Error{Kind: KindEncoding, Message: msg, Err: err}
}

func NewUnknownMethod(msg string) *Error {
	return &Error{Kind: KindUnknownMethod, Message: msg}
}

// KindOf returns the Kind of the first language error in err's chain.
func KindOf(err error) (Kind, bool) {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind, true
	}
	return "", false
}
