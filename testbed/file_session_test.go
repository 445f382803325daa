package testbed

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/extendable-lang/el-runtime/errors"
	"github.com/extendable-lang/el-runtime/runtime"
)

// A collection encoding is ordinary text, so it can pass through the file
// library and come back usable.
func TestSession_FileRoundTrip(t *testing.T) {
	reg, err := runtime.Default()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	path := filepath.Join(t.TempDir(), "saved.el")

	tbl := reg.Invoke("table:create")
	tbl = reg.Invoke("table:add", tbl, "e", "3443")
	tbl = reg.Invoke("table:add", tbl, "tert", "ea sports!")

	status := reg.Invoke("file:write", path, tbl)
	if errors.IsErrorText(status) {
		t.Fatalf("file:write = %q, want success", status)
	}

	// write returns the name, so the calls chain.
	loaded := reg.Invoke("file:read", status)
	if loaded != tbl {
		t.Fatalf("file:read = %q, want %q", loaded, tbl)
	}

	// The reread text is still a live collection.
	if got := reg.Invoke("table:get", loaded, "tert"); got != "ea sports!" {
		t.Errorf("table:get on reread = %q, want %q", got, "ea sports!")
	}
	if got := reg.Invoke("table:length", loaded); got != "2" {
		t.Errorf("table:length on reread = %q, want %q", got, "2")
	}
}

func TestSession_FileErrorsStayText(t *testing.T) {
	reg, err := runtime.Default()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	missing := filepath.Join(t.TempDir(), "never-written.el")

	out := reg.Invoke("file:read", missing)
	if !errors.IsErrorText(out) {
		t.Fatalf("file:read of missing file = %q, want error text", out)
	}
	if !strings.Contains(out, missing) {
		t.Errorf("file:read error %q does not name the file", out)
	}

	// Feeding error text onward fails cleanly, it does not crash.
	next := reg.Invoke("table:get", out, "k")
	if !errors.IsErrorText(next) {
		t.Errorf("operating on error text = %q, want error text", next)
	}
}
