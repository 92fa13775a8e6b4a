package email

//go:generate go tool mockgen -destination ../internal/testutil/ipmock/ipparser.go -package ipmock . IPParser

import (
	"net"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/webaddr/internal/errorutil"
)

// IPParser parses IP literals found in bracketed address domains.
// It is a collaborator interface: implementations own the literal
// grammar, the email parser only routes text to the right family.
type IPParser interface {
	ParseIPv4(s string) (net.IP, error)
	ParseIPv6(s string) (net.IP, error)
}

// DefaultIPParser is the [IPParser] used by [Parse].
var DefaultIPParser IPParser = stdIPParser{}

const errBadIPLiteral errorutil.Error = "malformed ip literal"

type stdIPParser struct{}

func (stdIPParser) ParseIPv4(s string) (net.IP, error) {
	ip := net.ParseIP(s)
	if ip == nil || strings.Contains(s, ":") {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(errBadIPLiteral, "%q is not an ipv4 address", s))
	}
	return ip.To4(), nil
}

func (stdIPParser) ParseIPv6(s string) (net.IP, error) {
	ip := net.ParseIP(s)
	if ip == nil || !strings.Contains(s, ":") {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(errBadIPLiteral, "%q is not an ipv6 address", s))
	}
	return ip.To16(), nil
}
