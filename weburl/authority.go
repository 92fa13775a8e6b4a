package weburl

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

// Authority is the "[userinfo@]host[:port]" component of a URL.
type Authority struct {
	host     hostname.Hostname
	userInfo string
	hasUser  bool
	port     uint16
	hasPort  bool
}

var (
	_ types.Renderer             = Authority{}
	_ types.Equalable            = Authority{}
	_ types.Cloneable[Authority] = Authority{}
)

// Host returns an [Authority] containing the provided host and no
// userinfo or port.
func Host(host hostname.Hostname) Authority {
	return Authority{host: host}
}

// HostPort returns an [Authority] containing the provided host and port.
func HostPort(host hostname.Hostname, port uint16) Authority {
	return Authority{host: host, port: port, hasPort: true}
}

// UserInfoHostPort returns an [Authority] with all three components set.
func UserInfoHostPort(userInfo string, host hostname.Hostname, port uint16) Authority {
	return Authority{host: host, userInfo: userInfo, hasUser: true, port: port, hasPort: true}
}

// ParseAuthority parses a "[userinfo@]host[:port]" string into an [Authority].
//
// Host failures are reported as [hostname] package errors, port failures
// as [*Error] with [ExpectMore], [ExpectNumber] or [ExpectPortRange].
func ParseAuthority[T ~string | ~[]byte](s T) (Authority, error) {
	text := string(s)

	var auth Authority
	rest := text
	hostStart := 0
	if at := strings.IndexByte(text, '@'); at >= 0 {
		auth.userInfo = text[:at]
		auth.hasUser = true
		rest = text[at+1:]
		hostStart = at + 1
	}

	hostText := rest
	portStart := -1
	if colon := strings.IndexByte(rest, ':'); colon >= 0 {
		hostText = rest[:colon]
		portStart = hostStart + colon + 1
	}

	host, err := hostname.Parse(hostText)
	if err != nil {
		return Authority{}, errtrace.Wrap(err)
	}
	auth.host = host

	if portStart >= 0 {
		port, err := parsePort(text, portStart)
		if err != nil {
			return Authority{}, errtrace.Wrap(err)
		}
		auth.port = port
		auth.hasPort = true
	}
	return auth, nil
}

// parsePort validates text[start:] as an unsigned decimal port number.
// Offsets in the returned error are relative to the whole text.
func parsePort(text string, start int) (uint16, error) {
	digits := text[start:]
	if digits == "" {
		return 0, errtrace.Wrap(newError(text, start, ExpectMore))
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return 0, errtrace.Wrap(newError(text, start+i, ExpectNumber))
		}
	}
	port, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || port > 65535 {
		return 0, errtrace.Wrap(newError(text, start, ExpectPortRange))
	}
	return uint16(port), nil
}

// Host returns the hostname component.
func (a Authority) Host() hostname.Hostname { return a.host }

// UserInfo returns the userinfo, in case it is set, and a bool flag
// indicating whether it is set.
func (a Authority) UserInfo() (string, bool) { return a.userInfo, a.hasUser }

// Port returns the port, in case it is set, and a bool flag indicating
// whether it is set.
func (a Authority) Port() (uint16, bool) { return a.port, a.hasPort }

// RenderTo writes the authority to the provided writer as
// "[userinfo@]host[:port]".
func (a Authority) RenderTo(w io.Writer, opts *types.RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if a.hasUser {
		cw.WriteString(a.userInfo) //nolint:errcheck
		cw.WriteByte('@')          //nolint:errcheck
	}
	cw.Call(func(w io.Writer) (int, error) { return a.host.RenderTo(w, opts) })
	if a.hasPort {
		cw.WriteByte(':')                         //nolint:errcheck
		cw.WriteString(strconv.Itoa(int(a.port))) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the authority.
func (a Authority) Render(opts *types.RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	a.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the authority.
func (a Authority) String() string { return a.Render(nil) }

// Format implements fmt.Formatter to support custom formatting verbs.
func (a Authority) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, a.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(a.String()))
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, a.String())
			return
		}

		type hideMethods Authority
		type Authority hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Authority(a))
	}
}

// Clone returns a deep copy of the authority.
func (a Authority) Clone() Authority {
	a.host = a.host.Clone()
	return a
}

// Equal reports whether the authority equals the provided value,
// accepting Authority and *Authority.
func (a Authority) Equal(val any) bool {
	var other Authority
	switch v := val.(type) {
	case Authority:
		other = v
	case *Authority:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return a.host.Equal(other.host) &&
		a.userInfo == other.userInfo && a.hasUser == other.hasUser &&
		a.port == other.port && a.hasPort == other.hasPort
}

// IsValid reports whether the authority contains a valid host and,
// when set, a port (always in range by construction).
func (a Authority) IsValid() bool { return a.host.IsValid() }

// IsZero reports whether the authority has no host, userinfo and port.
func (a Authority) IsZero() bool { return a.host.IsZero() && !a.hasUser && !a.hasPort }

// MarshalText encodes the authority into its textual representation.
func (a Authority) MarshalText() (text []byte, err error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a textual representation of an authority into the receiver.
func (a *Authority) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = Authority{}
		return nil
	}
	var err error
	*a, err = ParseAuthority(text)
	return errtrace.Wrap(err)
}
