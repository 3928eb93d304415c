package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies the failures a fetch can end with
type ErrorKind int

const (
	// KindNoCandidatesConfigured means the category or supplier list is empty
	KindNoCandidatesConfigured ErrorKind = iota + 1
	// KindUnknownName means no configured name was close to the query
	KindUnknownName
	// KindAmbiguousName means one name was close but not an exact positional match
	KindAmbiguousName
	// KindSupplierDefinitionUnreadable means the supplier file could not be read
	KindSupplierDefinitionUnreadable
	// KindSupplierDefinitionMalformed means the supplier file did not parse or validate
	KindSupplierDefinitionMalformed
	// KindFetchFailed means the supplier could not produce an image
	KindFetchFailed
	// KindPersistenceFailed means the image could not be cached or saved
	KindPersistenceFailed
	// KindMissingApplyCommand means assign was requested without a set_command
	KindMissingApplyCommand
	// KindApplyCommandFailed means the apply command ran and failed, or could not launch
	KindApplyCommandFailed
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNoCandidatesConfigured:
		return "NoCandidatesConfigured"
	case KindUnknownName:
		return "UnknownName"
	case KindAmbiguousName:
		return "AmbiguousName"
	case KindSupplierDefinitionUnreadable:
		return "SupplierDefinitionUnreadable"
	case KindSupplierDefinitionMalformed:
		return "SupplierDefinitionMalformed"
	case KindFetchFailed:
		return "FetchFailed"
	case KindPersistenceFailed:
		return "PersistenceFailed"
	case KindMissingApplyCommand:
		return "MissingApplyCommand"
	case KindApplyCommandFailed:
		return "ApplyCommandFailed"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrNoCandidatesConfigured       = &Error{Kind: KindNoCandidatesConfigured}
	ErrUnknownName                  = &Error{Kind: KindUnknownName}
	ErrAmbiguousName                = &Error{Kind: KindAmbiguousName}
	ErrSupplierDefinitionUnreadable = &Error{Kind: KindSupplierDefinitionUnreadable}
	ErrSupplierDefinitionMalformed  = &Error{Kind: KindSupplierDefinitionMalformed}
	ErrFetchFailed                  = &Error{Kind: KindFetchFailed}
	ErrPersistenceFailed            = &Error{Kind: KindPersistenceFailed}
	ErrMissingApplyCommand          = &Error{Kind: KindMissingApplyCommand}
	ErrApplyCommandFailed           = &Error{Kind: KindApplyCommandFailed}
)

// Error is the single error type surfaced by a fetch run
type Error struct {
	Kind ErrorKind
	// Subject is what was being resolved or loaded ("category", "supplier", a path)
	Subject string
	// Query is the user input that failed to resolve
	Query string
	// Suggestions are display names offered to the user, best first
	Suggestions []string
	// Message overrides the default rendering when set
	Message string
	// Cause is the underlying error if any
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var msg string
	switch {
	case e.Message != "":
		msg = e.Message
	case e.Kind == KindNoCandidatesConfigured:
		msg = fmt.Sprintf("No %s defined in config file.", plural(e.Subject))
	case e.Kind == KindAmbiguousName && len(e.Suggestions) > 0:
		msg = fmt.Sprintf("No %s for name: %s, did you mean: %s?", e.Subject, e.Query, e.Suggestions[0])
	case e.Kind == KindUnknownName:
		var b strings.Builder
		fmt.Fprintf(&b, "No %s for name: %s", e.Subject, e.Query)
		if len(e.Suggestions) > 0 {
			b.WriteString(", did you mean one of these:")
			for _, s := range e.Suggestions {
				b.WriteString("\n- ")
				b.WriteString(s)
			}
		}
		msg = b.String()
	case e.Kind == KindMissingApplyCommand:
		msg = "No 'set_command' entry present in config"
	default:
		msg = e.Kind.String()
		if e.Subject != "" {
			msg += " (" + e.Subject + ")"
		}
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or 0
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}

// NewError creates an *Error wrapping cause
func NewError(kind ErrorKind, subject string, cause error) *Error {
	return &Error{Kind: kind, Subject: subject, Cause: cause}
}

func plural(subject string) string {
	switch subject {
	case "":
		return "entries"
	case "category":
		return "categories"
	default:
		return subject + "s"
	}
}
