package hier

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/webaddr/internal/types"
	"github.com/ghettovoice/webaddr/internal/util"
)

// Hyperlink is a relative link between documents: an ascent/descent pair
// with no root.
type Hyperlink struct {
	loc Location
}

var (
	_ Path                       = Hyperlink{}
	_ types.Renderer             = Hyperlink{}
	_ types.Equalable            = Hyperlink{}
	_ types.Cloneable[Hyperlink] = Hyperlink{}
)

// NewHyperlink builds a [Hyperlink] from an ascent count and a descent
// sequence, most distant segment last.
func NewHyperlink(ascent int, descent []Segment) Hyperlink {
	return Hyperlink{loc: NewLocation(ascent, descent)}
}

// Ascent returns the number of parent-directory hops.
func (l Hyperlink) Ascent() int { return l.loc.Ascent() }

// Descent returns the named segments, most distant segment last.
func (l Hyperlink) Descent() ([]Segment, error) { return errtrace.Wrap2(l.loc.Descent()) }

// IsZero reports whether the link has no ascent and no descent.
func (l Hyperlink) IsZero() bool { return l.loc.IsZero() }

// Clone returns a deep copy of the link.
func (l Hyperlink) Clone() Hyperlink { return Hyperlink{loc: l.loc.Clone()} }

// Equal reports whether the link equals the provided value,
// accepting Hyperlink and *Hyperlink.
func (l Hyperlink) Equal(val any) bool {
	switch v := val.(type) {
	case Hyperlink:
		return l.loc.Equal(v.loc)
	case *Hyperlink:
		return v != nil && l.loc.Equal(v.loc)
	default:
		return false
	}
}

// RenderTo writes the link to the provided writer.
func (l Hyperlink) RenderTo(w io.Writer, _ *types.RenderOptions) (num int, err error) {
	return errtrace.Wrap2(RenderTo(w, l))
}

// Render returns the string representation of the link.
func (l Hyperlink) Render(opts *types.RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	l.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the link.
func (l Hyperlink) String() string { return l.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the link.
func (l Hyperlink) Format(f fmt.State, verb rune) { formatLink(f, verb, l.String()) }

// Weblink is a relative link within a web site: the same ascent/descent
// pair as [Hyperlink], kept as a distinct type so the two kinds of
// relative references cannot be mixed up.
type Weblink struct {
	loc Location
}

// NewWeblink builds a [Weblink] from an ascent count and a descent
// sequence, most distant segment last.
func NewWeblink(ascent int, descent []Segment) Weblink {
	return Weblink{loc: NewLocation(ascent, descent)}
}

var (
	_ Path                     = Weblink{}
	_ types.Renderer           = Weblink{}
	_ types.Equalable          = Weblink{}
	_ types.Cloneable[Weblink] = Weblink{}
)

// Ascent returns the number of parent-directory hops.
func (l Weblink) Ascent() int { return l.loc.Ascent() }

// Descent returns the named segments, most distant segment last.
func (l Weblink) Descent() ([]Segment, error) { return errtrace.Wrap2(l.loc.Descent()) }

// IsZero reports whether the link has no ascent and no descent.
func (l Weblink) IsZero() bool { return l.loc.IsZero() }

// Clone returns a deep copy of the link.
func (l Weblink) Clone() Weblink { return Weblink{loc: l.loc.Clone()} }

// Equal reports whether the link equals the provided value,
// accepting Weblink and *Weblink.
func (l Weblink) Equal(val any) bool {
	switch v := val.(type) {
	case Weblink:
		return l.loc.Equal(v.loc)
	case *Weblink:
		return v != nil && l.loc.Equal(v.loc)
	default:
		return false
	}
}

// RenderTo writes the link to the provided writer.
func (l Weblink) RenderTo(w io.Writer, _ *types.RenderOptions) (num int, err error) {
	return errtrace.Wrap2(RenderTo(w, l))
}

// Render returns the string representation of the link.
func (l Weblink) Render(opts *types.RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	l.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the link.
func (l Weblink) String() string { return l.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the link.
func (l Weblink) Format(f fmt.State, verb rune) { formatLink(f, verb, l.String()) }

func formatLink(f fmt.State, verb rune, s string) {
	switch verb {
	case 's':
		fmt.Fprint(f, s)
	case 'q':
		fmt.Fprint(f, strconv.Quote(s))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), s)
	}
}
