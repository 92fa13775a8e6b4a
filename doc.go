// Package webaddr validates and decomposes three related text formats —
// URLs, DNS hostnames and email addresses — into structured,
// invariant-preserving values.
//
// # Overview
//
// The work is split across four packages, leaves first:
//
//   - [github.com/ghettovoice/webaddr/hier]: the hierarchical
//     ascent/descent path model shared by relative links and absolute URLs.
//   - [github.com/ghettovoice/webaddr/hostname]: the DNS hostname
//     validator.
//   - [github.com/ghettovoice/webaddr/weburl]: the authority and URL
//     parsers plus the incremental URL template builder.
//   - [github.com/ghettovoice/webaddr/email]: the email address parser.
//
// This root package only re-exports the three parse entry points for
// callers that do not care about the component types:
//
//	u, err := webaddr.ParseURL("https://example.com/a/b?x=1#frag")
//	h, err := webaddr.ParseHostname("example.com")
//	m, err := webaddr.ParseEmail("user.name+tag@example.com")
//
// # Parsing model
//
// Callers feed whole in-memory strings into a parser and get back either
// a fully validated immutable value or a typed error; parsers fail fast
// at the first grammar violation found during a left-to-right scan and
// never return partial results. There is no normalization, no IDN
// handling, no comparison semantics beyond structural equality and no
// network I/O anywhere in the module.
//
// # Incremental construction
//
// [github.com/ghettovoice/webaddr/weburl.Template] assembles a URL from
// alternating literal and substituted fragments, re-validating the
// accumulated text after every substitution, so a structural mistake is
// reported at the fragment that caused it rather than only after the
// whole string is assembled.
//
// # Thread safety
//
// All parsed values are immutable. A Template session is owned by
// exactly one logical construction and must not be shared across
// goroutines without external synchronization.
package webaddr
