package weburl

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/webaddr/hier"
	"github.com/ghettovoice/webaddr/internal/errorutil"
	"github.com/ghettovoice/webaddr/internal/log"
)

// Value is a substituted fragment inserted into a [Template]:
// [Integral], [Textual] or [RawTextual].
type Value interface {
	value()
}

// Integral is a port number substitution. It may only follow a colon.
type Integral int64

func (Integral) value() {}

// Textual is a path segment substitution, percent-encoded on insertion.
// It may only follow a slash.
type Textual string

func (Textual) value() {}

// RawTextual is a path segment substitution inserted verbatim.
// It may only follow a slash.
type RawTextual string

func (RawTextual) value() {}

// Template assembles a URL from alternating literal and substituted
// fragments, validating the accumulated text after every substitution so
// a structural mistake is reported at the fragment that caused it.
//
// A Template is a value: every step returns a new one and the receiver is
// left untouched, so sessions are trivially testable and never shared by
// accident.
type Template struct {
	text  string
	codec Codec
	log   *slog.Logger
}

// TemplateOption configures a [Template].
type TemplateOption func(*Template)

// WithCodec sets the [Codec] used to encode [Textual] substitutions.
func WithCodec(c Codec) TemplateOption {
	return func(t *Template) {
		if c != nil {
			t.codec = c
		}
	}
}

// WithLogger sets the logger that receives one debug record per build step.
func WithLogger(l *slog.Logger) TemplateOption {
	return func(t *Template) {
		if l != nil {
			t.log = l
		}
	}
}

// WithDebug routes one console-formatted debug record per build step to w.
func WithDebug(w io.Writer) TemplateOption {
	return func(t *Template) {
		if w != nil {
			t.log = log.New(w)
		}
	}
}

// WithDevDebug is [WithDebug] with the colorized development formatter.
func WithDevDebug(w io.Writer) TemplateOption {
	return func(t *Template) {
		if w != nil {
			t.log = log.NewDev(w)
		}
	}
}

// NewTemplate returns an empty [Template].
func NewTemplate(opts ...TemplateOption) Template {
	t := Template{codec: DefaultCodec, log: log.Noop}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Text returns the accumulated text.
func (t Template) Text() string { return t.text }

// AppendLiteral appends a literal fragment. A literal appended after any
// prior content follows a substitution and must therefore start with a
// slash; otherwise [ErrLiteralNeedsSlash] is returned.
func (t Template) AppendLiteral(lit string) (Template, error) {
	if t.text != "" && lit != "" && lit[0] != hier.Sep {
		return t, errtrace.Wrap(errorutil.NewWrapperError(ErrLiteralNeedsSlash, "literal %q", lit))
	}
	t.log.Debug("append literal", "literal", lit, "buffer", t.text)
	t.text += lit
	return t, nil
}

// AppendValue appends a substituted fragment and re-validates the whole
// accumulated text with [Parse], forwarding any parse failure unchanged.
// Precondition failures raise [ErrPortNeedsColon] or
// [ErrSubstitutionNeedsSlash] before any text is appended.
func (t Template) AppendValue(v Value) (Template, error) {
	var next string
	switch v := v.(type) {
	case Integral:
		if !strings.HasSuffix(t.text, ":") {
			return t, errtrace.Wrap(errorutil.NewWrapperError(ErrPortNeedsColon, "buffer %q", t.text))
		}
		next = t.text + strconv.FormatInt(int64(v), 10)
	case Textual:
		if !strings.HasSuffix(t.text, string(hier.Sep)) {
			return t, errtrace.Wrap(errorutil.NewWrapperError(ErrSubstitutionNeedsSlash, "buffer %q", t.text))
		}
		next = t.text + t.codec.Encode(string(v))
	case RawTextual:
		if !strings.HasSuffix(t.text, string(hier.Sep)) {
			return t, errtrace.Wrap(errorutil.NewWrapperError(ErrSubstitutionNeedsSlash, "buffer %q", t.text))
		}
		next = t.text + string(v)
	default:
		return t, errtrace.Wrap(errorutil.NewInvalidArgumentError("unexpected value type %T", v))
	}
	if _, err := Parse(next); err != nil {
		return t, errtrace.Wrap(err)
	}
	t.log.Debug("append value", "value", log.FmtValue(v, false), "buffer", next)
	t.text = next
	return t, nil
}

// Finish re-validates the accumulated text one last time and returns the
// resulting URL, forwarding any parse failure unchanged.
func (t Template) Finish() (*URL, error) {
	u, err := Parse(t.text)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	t.log.Debug("finish", "url", u)
	return u, nil
}
