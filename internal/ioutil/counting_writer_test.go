package ioutil_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ghettovoice/webaddr/internal/ioutil"
)

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.NewCountingWriter(&sb)

	cw.WriteString("abc") //nolint:errcheck
	cw.WriteByte('/')     //nolint:errcheck
	cw.Fprint("def", 1)   //nolint:errcheck

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if want := sb.Len(); num != want {
		t.Errorf("cw.Result() num = %d, want %d", num, want)
	}
	if got, want := sb.String(), "abc/def1"; got != want {
		t.Errorf("sb.String() = %q, want %q", got, want)
	}
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestCountingWriter_StopsOnError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	cw := ioutil.NewCountingWriter(failWriter{err: wantErr})

	if _, err := cw.WriteString("abc"); !errors.Is(err, wantErr) {
		t.Fatalf("cw.WriteString error = %v, want %v", err, wantErr)
	}
	// subsequent writes are no-ops
	if _, err := cw.WriteString("def"); !errors.Is(err, wantErr) {
		t.Fatalf("cw.WriteString error = %v, want %v", err, wantErr)
	}

	num, err := cw.Result()
	if !errors.Is(err, wantErr) {
		t.Errorf("cw.Result() error = %v, want %v", err, wantErr)
	}
	if num != 0 {
		t.Errorf("cw.Result() num = %d, want 0", num)
	}
}

func TestCountingWriter_Call(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.GetCountingWriter(&sb)
	defer ioutil.FreeCountingWriter(cw)

	cw.Call(func(w io.Writer) (int, error) {
		return w.Write([]byte("xy"))
	})

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if num != 2 {
		t.Errorf("cw.Result() num = %d, want 2", num)
	}
}
