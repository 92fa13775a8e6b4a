package email

import (
	"io"
	"net"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/webaddr/hostname"
	"github.com/ghettovoice/webaddr/internal/types"
)

// Domain is the addressable part of an address after '@': exactly one of
// [Name], [IPv4] or [IPv6].
type Domain interface {
	// RenderTo writes the domain to the writer as it appears in an address.
	RenderTo(w io.Writer, opts *types.RenderOptions) (int, error)
	String() string
	cloneDomain() Domain
}

// Name is a hostname domain.
type Name struct {
	hostname.Hostname
}

func (d Name) cloneDomain() Domain { return Name{Hostname: d.Hostname.Clone()} }

// IPv4 is a bracketed IPv4-literal domain, e.g. "[192.0.2.1]".
type IPv4 struct {
	IP net.IP
}

// String returns the domain as it appears in an address.
func (d IPv4) String() string { return "[" + d.IP.String() + "]" }

// RenderTo writes the domain to the provided writer.
func (d IPv4) RenderTo(w io.Writer, _ *types.RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, d.String()))
}

func (d IPv4) cloneDomain() Domain { return IPv4{IP: slices.Clone(d.IP)} }

// IPv6 is a bracketed IPv6-literal domain, e.g. "[IPv6:2001:db8::1]".
type IPv6 struct {
	IP net.IP
}

// String returns the domain as it appears in an address.
func (d IPv6) String() string { return "[IPv6:" + d.IP.String() + "]" }

// RenderTo writes the domain to the provided writer.
func (d IPv6) RenderTo(w io.Writer, _ *types.RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, d.String()))
}

func (d IPv6) cloneDomain() Domain { return IPv6{IP: slices.Clone(d.IP)} }

func domainEqual(d1, d2 Domain) bool {
	switch v1 := d1.(type) {
	case Name:
		v2, ok := d2.(Name)
		return ok && v1.Hostname.Equal(v2.Hostname)
	case IPv4:
		v2, ok := d2.(IPv4)
		return ok && v1.IP.Equal(v2.IP)
	case IPv6:
		v2, ok := d2.(IPv6)
		return ok && v1.IP.Equal(v2.IP)
	default:
		return d1 == nil && d2 == nil
	}
}
