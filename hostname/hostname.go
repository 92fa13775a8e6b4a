// Package hostname validates DNS hostnames: dot-separated sequences of
// labels drawn from [A-Za-z0-9-], each 1-63 characters long and not
// starting with a dash. The scan fails fast at the first violation met
// in left-to-right order.
package hostname

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/webaddr/internal/errorutil"
	"github.com/ghettovoice/webaddr/internal/ioutil"
	"github.com/ghettovoice/webaddr/internal/types"
	"github.com/ghettovoice/webaddr/internal/util"
)

const (
	// MaxLabelLen is the longest permitted single DNS label.
	MaxLabelLen = 63
	// MaxHostnameLen bounds the encoded hostname length: the sum of
	// (label length + 1) over all labels.
	MaxHostnameLen = 254
)

// Label is a single validated DNS label.
type Label string

// Hostname is an ordered sequence of DNS labels.
type Hostname struct {
	labels []Label
}

var (
	_ types.Renderer            = Hostname{}
	_ types.Equalable           = Hostname{}
	_ types.Cloneable[Hostname] = Hostname{}
)

// Make builds a [Hostname] from already validated labels.
func Make(labels ...Label) Hostname {
	return Hostname{labels: slices.Clone(labels)}
}

// Parse validates the given input s (string or []byte) as a DNS hostname.
//
// Failures are reported through the package sentinels: [ErrEmptyLabel],
// [ErrLongLabel], [ErrInitialDash], [ErrInvalidChar] and [ErrLongHostname].
// The first violation met in left-to-right order wins.
func Parse[T ~string | ~[]byte](s T) (Hostname, error) {
	text := string(s)

	var labels []Label
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '.' {
			lbl := text[start:i]
			switch {
			case lbl == "":
				return Hostname{}, errtrace.Wrap(errorutil.NewWrapperError(ErrEmptyLabel, "label %d", len(labels)))
			case len(lbl) > MaxLabelLen:
				return Hostname{}, errtrace.Wrap(errorutil.NewWrapperError(ErrLongLabel, "label %q is %d characters", lbl, len(lbl)))
			case lbl[0] == '-':
				return Hostname{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInitialDash, "label %q", lbl))
			}
			labels = append(labels, Label(lbl))
			start = i + 1
			continue
		}
		if c := text[i]; c != '-' && !isAlphaNum(c) {
			return Hostname{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidChar, "%q at %d", c, i))
		}
	}

	total := 0
	for _, lbl := range labels {
		total += len(lbl) + 1
	}
	if total > MaxHostnameLen {
		return Hostname{}, errtrace.Wrap(errorutil.NewWrapperError(ErrLongHostname, "%d characters encoded", total))
	}
	return Hostname{labels: labels}, nil
}

func isAlphaNum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// Labels returns a copy of the hostname labels in left-to-right order.
func (h Hostname) Labels() []Label { return slices.Clone(h.labels) }

// RenderTo writes the hostname to the provided writer.
func (h Hostname) RenderTo(w io.Writer, _ *types.RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, lbl := range h.labels {
		if i > 0 {
			cw.WriteByte('.') //nolint:errcheck
		}
		cw.WriteString(string(lbl)) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the hostname.
func (h Hostname) Render(opts *types.RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	h.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the hostname.
func (h Hostname) String() string { return h.Render(nil) }

// Format implements fmt.Formatter to support custom formatting verbs.
func (h Hostname) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, h.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(h.String()))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), h.String())
	}
}

// Clone returns a deep copy of the hostname.
func (h Hostname) Clone() Hostname {
	h.labels = slices.Clone(h.labels)
	return h
}

// Equal reports whether the hostname equals the provided value, accepting
// Hostname and *Hostname. Labels compare case-insensitively.
func (h Hostname) Equal(val any) bool {
	var other Hostname
	switch v := val.(type) {
	case Hostname:
		other = v
	case *Hostname:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(h.labels, other.labels, util.EqFold[Label, Label])
}

// IsValid reports whether the hostname contains at least one label.
func (h Hostname) IsValid() bool { return len(h.labels) > 0 }

// IsZero reports whether the hostname has no labels.
func (h Hostname) IsZero() bool { return len(h.labels) == 0 }

// MarshalText encodes the hostname into its textual representation.
func (h Hostname) MarshalText() (text []byte, err error) {
	return []byte(h.String()), nil
}

// UnmarshalText parses a textual representation of a hostname into the receiver.
func (h *Hostname) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*h = Hostname{}
		return nil
	}
	var err error
	*h, err = Parse(text)
	return errtrace.Wrap(err)
}
