package weburl

import (
	"fmt"

	"github.com/ghettovoice/webaddr/internal/errorutil"
)

// Expectation tells what the scanner expected at the failure offset.
type Expectation int

const (
	// ExpectColon marks a missing scheme delimiter.
	ExpectColon Expectation = iota
	// ExpectMore marks an input that ended too early.
	ExpectMore
	// ExpectLowerCaseLetter is reserved for scheme conventions that are
	// not enforced at parse time.
	ExpectLowerCaseLetter
	// ExpectPortRange marks a port outside [0,65535].
	ExpectPortRange
	// ExpectNumber marks non-digit content where a port was required.
	ExpectNumber
)

// String returns a human readable name of the expectation.
func (e Expectation) String() string {
	switch e {
	case ExpectColon:
		return "a colon"
	case ExpectMore:
		return "more input"
	case ExpectLowerCaseLetter:
		return "a lower case letter"
	case ExpectPortRange:
		return "a port number in range 0-65535"
	case ExpectNumber:
		return "a number"
	default:
		return "unknown"
	}
}

// Error is a URL grammar error. It carries the scanned text, the exact
// byte offset of the failure and what was expected there.
type Error struct {
	Text   string
	Offset int
	Expect Expectation
}

func newError(text string, offset int, expect Expectation) *Error {
	return &Error{Text: text, Offset: offset, Expect: expect}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("expected %s at offset %d of %q", e.Expect, e.Offset, e.Text)
}

func (*Error) Grammar() bool { return true }

// Template precondition failures. The template never produces new grammar
// errors of its own: anything else it returns comes from [Parse].
const (
	// ErrLiteralNeedsSlash is returned by [Template.AppendLiteral] when a
	// literal that follows a substituted value does not start with a slash.
	ErrLiteralNeedsSlash errorutil.Error = "a substitution must be followed by a slash"
	// ErrSubstitutionNeedsSlash is returned by [Template.AppendValue] when
	// a textual value is inserted into a buffer that does not end with a slash.
	ErrSubstitutionNeedsSlash errorutil.Error = "a substitution may only be made after a slash"
	// ErrPortNeedsColon is returned by [Template.AppendValue] when an
	// integral value is inserted into a buffer that does not end with a colon.
	ErrPortNeedsColon errorutil.Error = "a port number must be specified after a colon"
)
