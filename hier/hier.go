// Package hier models slash-delimited hierarchical paths as an ascent
// (parent-directory hops) plus a descent (named segments), independent of
// what sits at the root. Relative links ([Hyperlink], [Weblink]) have no
// root; rooted values such as URLs implement [Rooted] and contribute a
// prefix of their own.
package hier

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/webaddr/internal/ioutil"
	"github.com/ghettovoice/webaddr/internal/util"
)

// Sep is the only separator recognized by this path model.
const Sep byte = '/'

// Segment is a single decoded path name. It never contains [Sep].
type Segment string

// Path is the capability shared by every hierarchical path value.
type Path interface {
	// Ascent returns the number of parent-directory hops the path
	// represents. Rooted paths always return 0.
	Ascent() int
	// Descent returns the named segments, most distant segment last.
	// Implementations that decode lazily may fail here.
	Descent() ([]Segment, error)
}

// Rooted is implemented by path values anchored at a root, e.g. a URL
// anchored at "scheme://authority".
type Rooted interface {
	Path
	// Root returns the prefix rendered before the first separator.
	Root() string
}

// Render renders the path to a string: root prefix for [Rooted] values,
// "../" per ascent hop, then the descent reversed back to natural order
// and joined with [Sep].
func Render(p Path) (string, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if _, err := RenderTo(sb, p); err != nil {
		return "", errtrace.Wrap(err)
	}
	return sb.String(), nil
}

// RenderTo renders the path to a writer. See [Render].
func RenderTo(w io.Writer, p Path) (num int, err error) {
	descent, err := p.Descent()
	if err != nil {
		return 0, errtrace.Wrap(err)
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	rooted, isRooted := p.(Rooted)
	if isRooted {
		cw.WriteString(rooted.Root()) //nolint:errcheck
	}
	for range p.Ascent() {
		cw.WriteString("../") //nolint:errcheck
	}
	for i := len(descent) - 1; i >= 0; i-- {
		if isRooted || i != len(descent)-1 {
			cw.WriteByte(Sep) //nolint:errcheck
		}
		cw.WriteString(string(descent[i])) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}
