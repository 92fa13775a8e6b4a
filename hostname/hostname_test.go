package hostname_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/miekg/dns"

	"github.com/ghettovoice/webaddr/hostname"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		in    string
		want  hostname.Hostname
		fails error
	}{
		{"single label", "localhost", hostname.Make("localhost"), nil},
		{"two labels", "example.com", hostname.Make("example", "com"), nil},
		{"digits and dashes", "a-1.b-2.c", hostname.Make("a-1", "b-2", "c"), nil},
		{"inner dash only", "a-b.com", hostname.Make("a-b", "com"), nil},
		{"max label", strings.Repeat("a", 63) + ".com", hostname.Make(hostname.Label(strings.Repeat("a", 63)), "com"), nil},
		{"empty input", "", hostname.Hostname{}, hostname.ErrEmptyLabel},
		{"consecutive dots", "a..b", hostname.Hostname{}, hostname.ErrEmptyLabel},
		{"trailing dot", "a.b.", hostname.Hostname{}, hostname.ErrEmptyLabel},
		{"leading dot", ".a.b", hostname.Hostname{}, hostname.ErrEmptyLabel},
		{"initial dash", "-abc.com", hostname.Hostname{}, hostname.ErrInitialDash},
		{"initial dash in later label", "abc.-com", hostname.Hostname{}, hostname.ErrInitialDash},
		{"underscore", "exa_mple.com", hostname.Hostname{}, hostname.ErrInvalidChar},
		{"space", "exa mple.com", hostname.Hostname{}, hostname.ErrInvalidChar},
		{"long label", strings.Repeat("a", 64) + ".com", hostname.Hostname{}, hostname.ErrLongLabel},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := hostname.Parse(c.in)
			if !errors.Is(err, c.fails) {
				t.Fatalf("hostname.Parse(%q) error = %v, want %v", c.in, err, c.fails)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("hostname.Parse(%q) diff (-got +want):\n%v", c.in, diff)
			}
		})
	}
}

// The total-length bound is checked against 254 as the sum of
// (label length + 1) over all labels, not against the commonly cited
// 253-character name bound: a 253-character name whose encoded sum is
// exactly 254 passes, one character more fails.
func TestParse_TotalLength(t *testing.T) {
	t.Parallel()

	lbl := strings.Repeat("a", 63)

	longest := strings.Join([]string{lbl, lbl, lbl, strings.Repeat("a", 61)}, ".")
	if len(longest) != 253 {
		t.Fatalf("len(longest) = %d, want 253", len(longest))
	}
	if _, err := hostname.Parse(longest); err != nil {
		t.Errorf("hostname.Parse(253-char name) error = %v, want nil", err)
	}

	tooLong := strings.Join([]string{lbl, lbl, lbl, strings.Repeat("a", 62)}, ".")
	if _, err := hostname.Parse(tooLong); !errors.Is(err, hostname.ErrLongHostname) {
		t.Errorf("hostname.Parse(254-char name) error = %v, want %v", err, hostname.ErrLongHostname)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"localhost",
		"example.com",
		"a-1.b-2.c",
		"xn--bcher-kva.example",
	} {
		h, err := hostname.Parse(in)
		if err != nil {
			t.Fatalf("hostname.Parse(%q) error = %v, want nil", in, err)
		}
		h2, err := hostname.Parse(h.String())
		if err != nil {
			t.Fatalf("hostname.Parse(%q) error = %v, want nil", h.String(), err)
		}
		if !h.Equal(h2) {
			t.Errorf("re-parsed hostname = %v, want %v", h2, h)
		}
	}
}

// Every name the validator accepts must also be a well-formed domain name
// for an independent DNS implementation.
func TestParse_DNSOracle(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"localhost",
		"example.com",
		"a-1.b-2.c",
		strings.Repeat("a", 63) + ".com",
	} {
		if _, err := hostname.Parse(in); err != nil {
			t.Fatalf("hostname.Parse(%q) error = %v, want nil", in, err)
		}
		if _, ok := dns.IsDomainName(in); !ok {
			t.Errorf("dns.IsDomainName(%q) = false, want true", in)
		}
	}
}

func TestHostname_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		h    hostname.Hostname
		val  any
		want bool
	}{
		{"same labels", hostname.Make("example", "com"), hostname.Make("example", "com"), true},
		{"case insensitive", hostname.Make("Example", "COM"), hostname.Make("example", "com"), true},
		{"different labels", hostname.Make("example", "com"), hostname.Make("example", "org"), false},
		{"different length", hostname.Make("example", "com"), hostname.Make("example"), false},
		{"nil pointer", hostname.Make("example"), (*hostname.Hostname)(nil), false},
		{"unrelated type", hostname.Make("example"), "example", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.h.Equal(c.val); got != c.want {
				t.Errorf("h.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestHostname_MarshalText(t *testing.T) {
	t.Parallel()

	h, err := hostname.Parse("example.com")
	if err != nil {
		t.Fatalf("hostname.Parse error = %v, want nil", err)
	}

	text, err := h.MarshalText()
	if err != nil {
		t.Fatalf("h.MarshalText() error = %v, want nil", err)
	}
	if string(text) != "example.com" {
		t.Errorf("h.MarshalText() = %q, want %q", text, "example.com")
	}

	var h2 hostname.Hostname
	if err := h2.UnmarshalText(text); err != nil {
		t.Fatalf("h2.UnmarshalText(%q) error = %v, want nil", text, err)
	}
	if !h.Equal(h2) {
		t.Errorf("unmarshalled hostname = %v, want %v", h2, h)
	}
}
