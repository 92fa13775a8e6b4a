// Package email validates email addresses: a quoted-string or dot-atom
// local part, followed by '@' and a hostname or bracketed IP literal.
//
// Failures are deliberately opaque: every violation, including any
// underlying hostname or IP parse detail, collapses to
// [ErrInvalidAddress]. Callers of email validation are not expected to
// branch on sub-reasons.
package email

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/webaddr/hostname"
	"github.com/ghettovoice/webaddr/internal/ioutil"
	"github.com/ghettovoice/webaddr/internal/types"
	"github.com/ghettovoice/webaddr/internal/util"
)

// Error is an email address grammar error.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

// ErrInvalidAddress is the only failure [Parse] produces.
const ErrInvalidAddress Error = "invalid email address"

// MaxLocalPartLen is the longest permitted unquoted local part.
const MaxLocalPartLen = 64

// Address is a parsed email address. DisplayName is never populated by
// [Parse]; it exists for values constructed by other means.
type Address struct {
	DisplayName string
	Local       LocalPart
	Domain      Domain
}

var (
	_ types.Renderer            = (*Address)(nil)
	_ types.Equalable           = (*Address)(nil)
	_ types.Cloneable[*Address] = (*Address)(nil)
)

// Parse parses the given input s (string or []byte) as an email address
// using [DefaultIPParser] for bracketed IP-literal domains.
func Parse[T ~string | ~[]byte](s T) (*Address, error) {
	return errtrace.Wrap2(ParseWith(s, DefaultIPParser))
}

// ParseWith parses the given input like [Parse], delegating IP-literal
// domains to the provided parser.
func ParseWith[T ~string | ~[]byte](s T, ipp IPParser) (*Address, error) {
	text := string(s)
	if text == "" {
		return nil, errtrace.Wrap(ErrInvalidAddress)
	}

	var (
		local LocalPart
		rest  string
		err   error
	)
	if text[0] == '"' {
		local, rest, err = scanQuoted(text)
	} else {
		local, rest, err = scanDotAtom(text)
	}
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	domain, err := parseDomain(rest, ipp)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Address{Local: local, Domain: domain}, nil
}

// scanQuoted recognizes a quoted local part with backslash escapes.
// The closing quote is accepted only when immediately followed by '@';
// the returned rest is the text after that '@'.
func scanQuoted(text string) (LocalPart, string, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	esc := false
	for i := 1; i < len(text); i++ {
		c := text[i]
		switch {
		case esc:
			sb.WriteByte(c)
			esc = false
		case c == '\\':
			esc = true
		case c == '"':
			if i+1 >= len(text) || text[i+1] != '@' {
				return nil, "", errtrace.Wrap(ErrInvalidAddress)
			}
			return Quoted(sb.String()), text[i+2:], nil
		default:
			sb.WriteByte(c)
		}
	}
	return nil, "", errtrace.Wrap(ErrInvalidAddress)
}

// scanDotAtom recognizes an unquoted dot-atom local part: atom characters
// separated by single non-leading, non-trailing dots, at most
// [MaxLocalPartLen] characters, terminated by '@'.
func scanDotAtom(text string) (LocalPart, string, error) {
	dot := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '@':
			if dot || i > MaxLocalPartLen {
				return nil, "", errtrace.Wrap(ErrInvalidAddress)
			}
			return Unquoted(text[:i]), text[i+1:], nil
		case c == '.':
			if dot || i == 0 {
				return nil, "", errtrace.Wrap(ErrInvalidAddress)
			}
			dot = true
		case isAtomChar(c):
			dot = false
		default:
			return nil, "", errtrace.Wrap(ErrInvalidAddress)
		}
	}
	return nil, "", errtrace.Wrap(ErrInvalidAddress)
}

func isAtomChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$%&'*+-/=?^_`{|}~", c) >= 0
}

// parseDomain recognizes the text after '@': a bracketed IP literal or a
// hostname. Underlying parse detail is discarded.
func parseDomain(text string, ipp IPParser) (Domain, error) {
	if strings.HasPrefix(text, "[") {
		if !strings.HasSuffix(text, "]") || len(text) < 2 {
			return nil, errtrace.Wrap(ErrInvalidAddress)
		}
		inner := text[1 : len(text)-1]
		if tail, ok := strings.CutPrefix(inner, "IPv6:"); ok {
			ip, err := ipp.ParseIPv6(tail)
			if err != nil {
				return nil, errtrace.Wrap(ErrInvalidAddress)
			}
			return IPv6{IP: ip}, nil
		}
		ip, err := ipp.ParseIPv4(inner)
		if err != nil {
			return nil, errtrace.Wrap(ErrInvalidAddress)
		}
		return IPv4{IP: ip}, nil
	}

	h, err := hostname.Parse(text)
	if err != nil {
		return nil, errtrace.Wrap(ErrInvalidAddress)
	}
	return Name{Hostname: h}, nil
}

// RenderTo writes the address to the provided writer. A non-empty
// DisplayName renders as "name <local@domain>".
func (a *Address) RenderTo(w io.Writer, opts *types.RenderOptions) (num int, err error) {
	if a == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if a.DisplayName != "" {
		cw.WriteString(a.DisplayName) //nolint:errcheck
		cw.WriteString(" <")          //nolint:errcheck
	}
	if a.Local != nil {
		cw.Call(func(w io.Writer) (int, error) { return a.Local.RenderTo(w, opts) })
	}
	cw.WriteByte('@') //nolint:errcheck
	if a.Domain != nil {
		cw.Call(func(w io.Writer) (int, error) { return a.Domain.RenderTo(w, opts) })
	}
	if a.DisplayName != "" {
		cw.WriteByte('>') //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the address.
func (a *Address) Render(opts *types.RenderOptions) string {
	if a == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	a.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the address.
func (a *Address) String() string { return a.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the address.
func (a *Address) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, a.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(a.String()))
	default:
		type hideMethods Address
		type Address hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Address)(a))
	}
}

// Clone returns a deep copy of the address.
func (a *Address) Clone() *Address {
	if a == nil {
		return nil
	}
	a2 := *a
	if a.Domain != nil {
		a2.Domain = a.Domain.cloneDomain()
	}
	return &a2
}

// Equal reports whether the address equals the provided value, accepting
// Address and *Address.
func (a *Address) Equal(val any) bool {
	var other *Address
	switch v := val.(type) {
	case Address:
		other = &v
	case *Address:
		other = v
	default:
		return false
	}
	if a == nil || other == nil {
		return a == nil && other == nil
	}
	return a.DisplayName == other.DisplayName &&
		localEqual(a.Local, other.Local) &&
		domainEqual(a.Domain, other.Domain)
}

// IsValid reports whether the address carries both a local part and a domain.
func (a *Address) IsValid() bool { return a != nil && a.Local != nil && a.Domain != nil }

// MarshalText encodes the address into its textual representation.
func (a *Address) MarshalText() (text []byte, err error) {
	if a == nil {
		return nil, nil
	}
	return []byte(a.String()), nil
}

// UnmarshalText parses a textual representation of an address into the receiver.
func (a *Address) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = Address{}
		return nil
	}
	a2, err := Parse(text)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*a = *a2
	return nil
}
