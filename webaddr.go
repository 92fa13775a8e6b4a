package webaddr

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/webaddr/email"
	"github.com/ghettovoice/webaddr/hostname"
	"github.com/ghettovoice/webaddr/weburl"
)

// ParseURL parses the given input s (string or []byte) as an absolute URL.
//
// See [weburl.Parse].
func ParseURL[T ~string | ~[]byte](s T) (*weburl.URL, error) {
	return errtrace.Wrap2(weburl.Parse(s))
}

// ParseHostname parses the given input s (string or []byte) as a DNS hostname.
//
// See [hostname.Parse].
func ParseHostname[T ~string | ~[]byte](s T) (hostname.Hostname, error) {
	return errtrace.Wrap2(hostname.Parse(s))
}

// ParseEmail parses the given input s (string or []byte) as an email address.
//
// See [email.Parse].
func ParseEmail[T ~string | ~[]byte](s T) (*email.Address, error) {
	return errtrace.Wrap2(email.Parse(s))
}
