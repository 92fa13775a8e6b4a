package email

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/webaddr/internal/types"
)

// LocalPart is the part of an address before '@': [Quoted] or [Unquoted].
type LocalPart interface {
	// RenderTo writes the local part to the writer as it appears in an address.
	RenderTo(w io.Writer, opts *types.RenderOptions) (int, error)
	String() string
	localPart()
}

// Unquoted is a dot-atom local part.
type Unquoted string

func (Unquoted) localPart() {}

// String returns the local part as it appears in an address.
func (lp Unquoted) String() string { return string(lp) }

// RenderTo writes the local part to the provided writer.
func (lp Unquoted) RenderTo(w io.Writer, _ *types.RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, string(lp)))
}

// Quoted is a quoted-string local part with escapes already resolved.
type Quoted string

func (Quoted) localPart() {}

// String returns the local part as it appears in an address: quoted,
// with '"' and '\' re-escaped.
func (lp Quoted) String() string {
	var sb strings.Builder
	sb.Grow(len(lp) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(lp); i++ {
		if c := lp[i]; c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(lp[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// RenderTo writes the quoted local part to the provided writer.
func (lp Quoted) RenderTo(w io.Writer, _ *types.RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, lp.String()))
}

func localEqual(lp1, lp2 LocalPart) bool {
	switch v1 := lp1.(type) {
	case Unquoted:
		v2, ok := lp2.(Unquoted)
		return ok && v1 == v2
	case Quoted:
		v2, ok := lp2.(Quoted)
		return ok && v1 == v2
	default:
		return lp1 == nil && lp2 == nil
	}
}
