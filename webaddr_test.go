package webaddr_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/webaddr"
	"github.com/ghettovoice/webaddr/email"
	"github.com/ghettovoice/webaddr/hostname"
	"github.com/ghettovoice/webaddr/internal/errorutil"
	"github.com/ghettovoice/webaddr/internal/types"
)

func TestParseURL(t *testing.T) {
	t.Parallel()

	u, err := webaddr.ParseURL("https://example.com/a/b?x=1#frag")
	if err != nil {
		t.Fatalf("webaddr.ParseURL error = %v, want nil", err)
	}
	if got := u.Scheme(); got != "https" {
		t.Errorf("u.Scheme() = %q, want %q", got, "https")
	}
	if !types.IsValid(u) {
		t.Error("types.IsValid(u) = false, want true")
	}

	_, err = webaddr.ParseURL("no-colon")
	if !errorutil.IsGrammarErr(err) {
		t.Errorf("webaddr.ParseURL error = %v, want a grammar error", err)
	}
}

func TestParseHostname(t *testing.T) {
	t.Parallel()

	h, err := webaddr.ParseHostname("example.com")
	if err != nil {
		t.Fatalf("webaddr.ParseHostname error = %v, want nil", err)
	}
	if !types.IsEqual(h, hostname.Make("example", "com")) {
		t.Errorf("h = %v, want example.com", h)
	}

	if _, err := webaddr.ParseHostname("exa_mple.com"); !errors.Is(err, hostname.ErrInvalidChar) {
		t.Errorf("webaddr.ParseHostname error = %v, want %v", err, hostname.ErrInvalidChar)
	}
}

func TestParseEmail(t *testing.T) {
	t.Parallel()

	addr, err := webaddr.ParseEmail("user@example.com")
	if err != nil {
		t.Fatalf("webaddr.ParseEmail error = %v, want nil", err)
	}
	if got := addr.String(); got != "user@example.com" {
		t.Errorf("addr.String() = %q, want %q", got, "user@example.com")
	}

	if _, err := webaddr.ParseEmail("a..b@example.com"); !errors.Is(err, email.ErrInvalidAddress) {
		t.Errorf("webaddr.ParseEmail error = %v, want %v", err, email.ErrInvalidAddress)
	}
}
