package weburl

import (
	"net/url"

	"braces.dev/errtrace"
)

// Codec percent-encodes and decodes path segments and substituted text.
// It is a collaborator interface: the parser itself never encodes, it
// only decodes when deriving the segment view of a path.
type Codec interface {
	Encode(s string) string
	Decode(s string) (string, error)
}

// DefaultCodec is the [Codec] used when none is supplied.
var DefaultCodec Codec = stdCodec{}

type stdCodec struct{}

func (stdCodec) Encode(s string) string { return url.PathEscape(s) }

func (stdCodec) Decode(s string) (string, error) {
	return errtrace.Wrap2(url.PathUnescape(s))
}
