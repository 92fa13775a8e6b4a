// Package weburl validates and decomposes absolute URLs of the form
// "scheme:[//authority]path[?query][#fragment]" and provides a staged,
// validating construction protocol for assembling them from literal and
// substituted fragments.
//
// The scanner is index-based and fails fast: the first grammar violation
// met in left-to-right order is reported as a [*Error] carrying the exact
// byte offset, or as a hostname error when the authority host is at fault.
package weburl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/webaddr/hier"
	"github.com/ghettovoice/webaddr/internal/ioutil"
	"github.com/ghettovoice/webaddr/internal/types"
	"github.com/ghettovoice/webaddr/internal/util"
)

// URL is a parsed absolute URL. A usable URL carries a non-empty scheme;
// authority, query and fragment are optional. The path is kept as raw
// text and the decoded segment view is derived on demand.
type URL struct {
	scheme   string
	auth     Authority
	hasAuth  bool
	rawPath  string
	query    string
	hasQuery bool
	frag     string
	hasFrag  bool

	// cached Descent view, derived once per instance
	path     []hier.Segment
	pathErr  error
	pathDone bool
}

var (
	_ hier.Rooted           = (*URL)(nil)
	_ types.Renderer        = (*URL)(nil)
	_ types.Equalable       = (*URL)(nil)
	_ types.Cloneable[*URL] = (*URL)(nil)
)

// New builds a URL from a scheme and raw path text. Optional components
// are attached with [URL.WithAuthority], [URL.WithQuery] and
// [URL.WithFragment].
func New(scheme, rawPath string) *URL {
	return &URL{scheme: scheme, rawPath: rawPath}
}

// WithAuthority returns a copy of the URL with the authority set.
func (u *URL) WithAuthority(a Authority) *URL {
	u2 := u.shallowClone()
	u2.auth = a.Clone()
	u2.hasAuth = true
	return u2
}

// WithQuery returns a copy of the URL with the query set.
func (u *URL) WithQuery(query string) *URL {
	u2 := u.shallowClone()
	u2.query = query
	u2.hasQuery = true
	return u2
}

// WithFragment returns a copy of the URL with the fragment set.
func (u *URL) WithFragment(fragment string) *URL {
	u2 := u.shallowClone()
	u2.frag = fragment
	u2.hasFrag = true
	return u2
}

// Parse parses the given input s (string or []byte) as an absolute URL.
//
// A missing scheme delimiter fails hard with a [*Error] carrying
// [ExpectColon] at the end of the input; no fallback value is produced.
// The scheme is everything before the first colon and is not itself
// validated, so an input starting with a colon parses into a URL with an
// empty scheme; [URL.IsValid] reports false for such values.
// Authority failures propagate unchanged from [ParseAuthority].
func Parse[T ~string | ~[]byte](s T) (*URL, error) {
	text := string(s)

	colon := strings.IndexByte(text, ':')
	if colon < 0 {
		return nil, errtrace.Wrap(newError(text, len(text), ExpectColon))
	}
	u := &URL{scheme: text[:colon]}

	pathStart := colon + 1
	if strings.HasPrefix(text[pathStart:], "//") {
		authStart := colon + 3
		authEnd := len(text)
		if i := strings.IndexByte(text[authStart:], '/'); i >= 0 {
			authEnd = authStart + i
		}
		auth, err := ParseAuthority(text[authStart:authEnd])
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		u.auth = auth
		u.hasAuth = true
		pathStart = authEnd
	}

	rest := text[pathStart:]
	q := strings.IndexByte(rest, '?')
	h := -1
	if q >= 0 {
		if i := strings.IndexByte(rest[q+1:], '#'); i >= 0 {
			h = q + 1 + i
		}
	} else {
		h = strings.IndexByte(rest, '#')
	}
	switch {
	case q < 0 && h < 0:
		u.rawPath = rest
	case q < 0:
		u.rawPath = rest[:h]
		u.frag = rest[h+1:]
		u.hasFrag = true
	case h < 0:
		u.rawPath = rest[:q]
		u.query = rest[q+1:]
		u.hasQuery = true
	default:
		u.rawPath = rest[:q]
		u.query = rest[q+1 : h]
		u.hasQuery = true
		u.frag = rest[h+1:]
		u.hasFrag = true
	}
	return u, nil
}

// Scheme returns the URL scheme.
func (u *URL) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme
}

// SchemeIs reports whether the URL scheme equals s, ignoring case.
// Schemes are conventionally lowercase but the case is not enforced at
// parse time.
func (u *URL) SchemeIs(s string) bool { return u != nil && util.EqFold(u.scheme, s) }

// Authority returns the authority, in case it is present, and a bool flag
// indicating whether it is present.
func (u *URL) Authority() (Authority, bool) {
	if u == nil {
		return Authority{}, false
	}
	return u.auth, u.hasAuth
}

// RawPath returns the raw, undecoded path text.
func (u *URL) RawPath() string {
	if u == nil {
		return ""
	}
	return u.rawPath
}

// Query returns the query, in case it is present, and a bool flag
// indicating whether it is present.
func (u *URL) Query() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.query, u.hasQuery
}

// Fragment returns the fragment, in case it is present, and a bool flag
// indicating whether it is present.
func (u *URL) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.frag, u.hasFrag
}

// Ascent implements [hier.Path]. An absolute URL has a root instead of
// parent hops, so the ascent is always 0.
func (u *URL) Ascent() int { return 0 }

// Descent implements [hier.Path]: the raw path without its single leading
// separator, split on '/', reversed to most-distant-last order and
// percent-decoded through [DefaultCodec]. The view is derived once per
// instance and cached; the cache is not safe for concurrent first use.
func (u *URL) Descent() ([]hier.Segment, error) {
	if u == nil {
		return nil, nil
	}
	if !u.pathDone {
		u.path, u.pathErr = decodePath(u.rawPath)
		u.pathDone = true
	}
	if u.pathErr != nil {
		return nil, errtrace.Wrap(u.pathErr)
	}
	return u.path, nil
}

// Root implements [hier.Rooted]: "scheme:" plus "//authority" when an
// authority is present.
func (u *URL) Root() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(u.scheme)
	sb.WriteByte(':')
	if u.hasAuth {
		sb.WriteString("//")
		sb.WriteString(u.auth.String())
	}
	return sb.String()
}

// Path returns the decoded path view as a [hier.Location].
func (u *URL) Path() (hier.Location, error) {
	descent, err := u.Descent()
	if err != nil {
		return hier.Location{}, errtrace.Wrap(err)
	}
	return hier.NewLocation(0, descent), nil
}

func decodePath(rawPath string) ([]hier.Segment, error) {
	if rawPath == "" {
		return nil, nil
	}
	parts := strings.Split(strings.TrimPrefix(rawPath, "/"), "/")
	segs := make([]hier.Segment, 0, len(parts))
	for i := len(parts) - 1; i >= 0; i-- {
		dec, err := DefaultCodec.Decode(parts[i])
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		segs = append(segs, hier.Segment(dec))
	}
	return segs, nil
}

// RenderTo writes the URL to the provided writer as
// "scheme:[//authority]path[?query][#fragment]".
func (u *URL) RenderTo(w io.Writer, opts *types.RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(u.scheme) //nolint:errcheck
	cw.WriteByte(':')        //nolint:errcheck
	if u.hasAuth {
		cw.WriteString("//") //nolint:errcheck
		cw.Call(func(w io.Writer) (int, error) { return u.auth.RenderTo(w, opts) })
	}
	cw.WriteString(u.rawPath) //nolint:errcheck
	if u.hasQuery {
		cw.WriteByte('?')       //nolint:errcheck
		cw.WriteString(u.query) //nolint:errcheck
	}
	if u.hasFrag {
		cw.WriteByte('#')      //nolint:errcheck
		cw.WriteString(u.frag) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URL.
func (u *URL) Render(opts *types.RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URL.
func (u *URL) String() string { return u.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the URL.
func (u *URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
	default:
		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URL)(u))
	}
}

// Clone returns a deep copy of the URL. The cached path view is not carried over.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	return u.shallowClone()
}

func (u *URL) shallowClone() *URL {
	u2 := *u
	u2.auth = u.auth.Clone()
	u2.path = nil
	u2.pathErr = nil
	u2.pathDone = false
	return &u2
}

// Equal reports whether the URL equals the provided value, accepting
// URL and *URL. Comparison is structural over the parsed components.
func (u *URL) Equal(val any) bool {
	var other *URL
	switch v := val.(type) {
	case URL:
		other = &v
	case *URL:
		other = v
	default:
		return false
	}
	if u == nil || other == nil {
		return u == nil && other == nil
	}
	return u.scheme == other.scheme &&
		u.hasAuth == other.hasAuth && u.auth.Equal(other.auth) &&
		u.rawPath == other.rawPath &&
		u.query == other.query && u.hasQuery == other.hasQuery &&
		u.frag == other.frag && u.hasFrag == other.hasFrag
}

// IsValid reports whether the URL carries a non-empty scheme.
func (u *URL) IsValid() bool { return u != nil && u.scheme != "" }

// MarshalText encodes the URL into its textual representation.
func (u *URL) MarshalText() (text []byte, err error) {
	if u == nil {
		return nil, nil
	}
	return []byte(u.String()), nil
}

// UnmarshalText parses a textual representation of a URL into the receiver.
func (u *URL) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*u = URL{}
		return nil
	}
	u2, err := Parse(text)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*u = *u2
	return nil
}
