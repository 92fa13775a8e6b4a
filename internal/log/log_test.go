package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/webaddr/internal/log"
)

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log.New(&buf).Debug("hello", "key", "val")

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "val") {
		t.Errorf("log.New output = %q, want record with message and attr", out)
	}
}

func TestNewDev(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log.NewDev(&buf).Debug("hello", "key", "val")

	if out := buf.String(); !strings.Contains(out, "hello") {
		t.Errorf("log.NewDev output = %q, want record with message", out)
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(context.Background(), slog.LevelError) {
		t.Error("log.Noop.Enabled(error) = true, want false")
	}
}

func TestFmtValue(t *testing.T) {
	t.Parallel()

	type pair struct{ A, B int }

	if got, want := log.FmtValue(pair{1, 2}, false).LogValue().String(), "{A:1 B:2}"; got != want {
		t.Errorf("FmtValue(v, false) = %q, want %q", got, want)
	}
	if got := log.FmtValue(pair{1, 2}, true).LogValue().String(); !strings.Contains(got, "pair{A:1, B:2}") {
		t.Errorf("FmtValue(v, true) = %q, want go-syntax form", got)
	}
}
