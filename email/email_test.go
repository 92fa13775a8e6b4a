package email_test

import (
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/webaddr/email"
	"github.com/ghettovoice/webaddr/hostname"
	"github.com/ghettovoice/webaddr/internal/testutil/ipmock"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		in    string
		want  *email.Address
		fails bool
	}{
		{
			name: "dot atom",
			in:   "user.name+tag@example.com",
			want: &email.Address{
				Local:  email.Unquoted("user.name+tag"),
				Domain: email.Name{Hostname: hostname.Make("example", "com")},
			},
		},
		{
			name: "punctuation atoms",
			in:   "!#$%&'*+-/=?^_`{|}~@example.com",
			want: &email.Address{
				Local:  email.Unquoted("!#$%&'*+-/=?^_`{|}~"),
				Domain: email.Name{Hostname: hostname.Make("example", "com")},
			},
		},
		{
			name: "quoted with space",
			in:   `"a b"@example.com`,
			want: &email.Address{
				Local:  email.Quoted("a b"),
				Domain: email.Name{Hostname: hostname.Make("example", "com")},
			},
		},
		{
			name: "quoted with escaped quote",
			in:   `"a\"b"@example.com`,
			want: &email.Address{
				Local:  email.Quoted(`a"b`),
				Domain: email.Name{Hostname: hostname.Make("example", "com")},
			},
		},
		{
			name: "quoted with escaped backslash",
			in:   `"a\\b"@example.com`,
			want: &email.Address{
				Local:  email.Quoted(`a\b`),
				Domain: email.Name{Hostname: hostname.Make("example", "com")},
			},
		},
		{
			name: "quoted with escaped at",
			in:   `"a@b"@example.com`,
			want: &email.Address{
				Local:  email.Quoted("a@b"),
				Domain: email.Name{Hostname: hostname.Make("example", "com")},
			},
		},
		{
			name: "ipv4 literal domain",
			in:   "user@[192.0.2.1]",
			want: &email.Address{
				Local:  email.Unquoted("user"),
				Domain: email.IPv4{IP: net.IPv4(192, 0, 2, 1).To4()},
			},
		},
		{
			name: "ipv6 literal domain",
			in:   "user@[IPv6:2001:db8::1]",
			want: &email.Address{
				Local:  email.Unquoted("user"),
				Domain: email.IPv6{IP: net.ParseIP("2001:db8::1")},
			},
		},
		{"empty input", "", nil, true},
		{"no at sign", "user.example.com", nil, true},
		{"consecutive dots", "a..b@example.com", nil, true},
		{"leading dot", ".a@example.com", nil, true},
		{"trailing dot", "a.@example.com", nil, true},
		{"forbidden char", "a,b@example.com", nil, true},
		{"local part too long", strings.Repeat("a", 65) + "@example.com", nil, true},
		{"unterminated quote", `"a b@example.com`, nil, true},
		{"quote not before at", `"a"b@example.com`, nil, true},
		{"escape at end", `"a\`, nil, true},
		{"bad hostname domain", "user@exa_mple.com", nil, true},
		{"unclosed ip literal", "user@[192.0.2.1", nil, true},
		{"bad ipv4 literal", "user@[not-an-ip]", nil, true},
		{"bad ipv6 literal", "user@[IPv6:not-an-ip]", nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := email.Parse(c.in)
			if c.fails {
				if !errors.Is(err, email.ErrInvalidAddress) {
					t.Fatalf("email.Parse(%q) error = %v, want %v", c.in, err, email.ErrInvalidAddress)
				}
				return
			}
			if err != nil {
				t.Fatalf("email.Parse(%q) error = %v, want nil", c.in, err)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("email.Parse(%q) diff (-got +want):\n%v", c.in, diff)
			}
		})
	}
}

// a local part of exactly 64 characters is the longest accepted
func TestParse_LocalPartBound(t *testing.T) {
	t.Parallel()

	if _, err := email.Parse(strings.Repeat("a", 64) + "@example.com"); err != nil {
		t.Errorf("email.Parse(64-char local) error = %v, want nil", err)
	}
	if _, err := email.Parse(strings.Repeat("a", 65) + "@example.com"); !errors.Is(err, email.ErrInvalidAddress) {
		t.Errorf("email.Parse(65-char local) error = %v, want %v", err, email.ErrInvalidAddress)
	}
}

func TestParse_HostnameDetailIsDiscarded(t *testing.T) {
	t.Parallel()

	_, err := email.Parse("user@exa_mple.com")
	if !errors.Is(err, email.ErrInvalidAddress) {
		t.Fatalf("email.Parse error = %v, want %v", err, email.ErrInvalidAddress)
	}
	if errors.Is(err, hostname.ErrInvalidChar) {
		t.Error("hostname error detail leaked through email.Parse")
	}
}

func TestParseWith(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	ipp := ipmock.NewMockIPParser(ctrl)
	ipp.EXPECT().
		ParseIPv4("10.0.0.1").
		Return(net.IPv4(10, 0, 0, 1).To4(), nil).
		Times(1)

	addr, err := email.ParseWith("user@[10.0.0.1]", ipp)
	if err != nil {
		t.Fatalf("email.ParseWith error = %v, want nil", err)
	}
	want := &email.Address{
		Local:  email.Unquoted("user"),
		Domain: email.IPv4{IP: net.IPv4(10, 0, 0, 1).To4()},
	}
	if diff := cmp.Diff(addr, want); diff != "" {
		t.Errorf("email.ParseWith diff (-got +want):\n%v", diff)
	}
}

func TestParseWith_IPErrorCollapses(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	ipp := ipmock.NewMockIPParser(ctrl)
	ipp.EXPECT().
		ParseIPv6("2001:db8::1").
		Return(nil, errors.New("boom")).
		Times(1)

	_, err := email.ParseWith("user@[IPv6:2001:db8::1]", ipp)
	if !errors.Is(err, email.ErrInvalidAddress) {
		t.Fatalf("email.ParseWith error = %v, want %v", err, email.ErrInvalidAddress)
	}
	if strings.Contains(err.Error(), "boom") {
		t.Error("ip parser error detail leaked through email.ParseWith")
	}
}

func TestAddress_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		addr *email.Address
		want string
	}{
		{"nil", (*email.Address)(nil), ""},
		{
			"unquoted",
			&email.Address{
				Local:  email.Unquoted("user"),
				Domain: email.Name{Hostname: hostname.Make("example", "com")},
			},
			"user@example.com",
		},
		{
			"quoted re-escaped",
			&email.Address{
				Local:  email.Quoted(`a"b\c`),
				Domain: email.Name{Hostname: hostname.Make("example", "com")},
			},
			`"a\"b\\c"@example.com`,
		},
		{
			"ipv4 domain",
			&email.Address{
				Local:  email.Unquoted("user"),
				Domain: email.IPv4{IP: net.IPv4(192, 0, 2, 1).To4()},
			},
			"user@[192.0.2.1]",
		},
		{
			"ipv6 domain",
			&email.Address{
				Local:  email.Unquoted("user"),
				Domain: email.IPv6{IP: net.ParseIP("2001:db8::1")},
			},
			"user@[IPv6:2001:db8::1]",
		},
		{
			"display name",
			&email.Address{
				DisplayName: "Alice",
				Local:       email.Unquoted("alice"),
				Domain:      email.Name{Hostname: hostname.Make("example", "com")},
			},
			"Alice <alice@example.com>",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.addr.String(); got != c.want {
				t.Errorf("addr.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestParse_RenderRoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"user.name+tag@example.com",
		`"a b"@example.com`,
		`"a\"b"@example.com`,
		"user@[192.0.2.1]",
		"user@[IPv6:2001:db8::1]",
	} {
		addr, err := email.Parse(in)
		if err != nil {
			t.Fatalf("email.Parse(%q) error = %v, want nil", in, err)
		}
		addr2, err := email.Parse(addr.String())
		if err != nil {
			t.Fatalf("email.Parse(%q) error = %v, want nil", addr.String(), err)
		}
		if !addr.Equal(addr2) {
			t.Errorf("re-parsed address = %v, want %v", addr2, addr)
		}
	}
}
