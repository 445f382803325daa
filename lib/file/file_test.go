package file

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/extendable-lang/el-runtime/errors"
)

func TestWriteRead(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		file string
		data string
	}{
		{name: "plain text", file: "plain.txt", data: "hello from the script"},
		{name: "empty data", file: "empty.txt", data: ""},
		{name: "collection encoding", file: "table.json", data: `{"e":3443,"tert":"ea sports!"}`},
		{name: "multiline", file: "lines.txt", data: "one\ntwo\nthree\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := Write(path, tt.data); err != nil {
				t.Fatalf("Write(%q) error: %v", path, err)
			}
			got, err := Read(path)
			if err != nil {
				t.Fatalf("Read(%q) error: %v", path, err)
			}
			if got != tt.data {
				t.Errorf("Read(Write(%q)) = %q, want %q", tt.data, got, tt.data)
			}
		})
	}
}

func TestWrite_Replaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	if err := Write(path, "first version, rather long"); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := Write(path, "second"); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if got != "second" {
		t.Errorf("Read = %q, want %q", got, "second")
	}
}

func TestRead_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")
	_, err := Read(path)
	if err == nil {
		t.Fatal("Read of missing file returned nil error")
	}
	if !errors.IsKind(err, errors.KindIO) {
		t.Errorf("Read error kind = %v, want %v", err, errors.KindIO)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Read error %q does not name the file %q", err.Error(), path)
	}
}

func TestEmptyName(t *testing.T) {
	if err := Write("", "data"); !errors.IsKind(err, errors.KindMissingArgument) {
		t.Errorf("Write(\"\") error = %v, want missing_argument", err)
	}
	if _, err := Read(""); !errors.IsKind(err, errors.KindMissingArgument) {
		t.Errorf("Read(\"\") error = %v, want missing_argument", err)
	}
}

func TestScriptSurface(t *testing.T) {
	lib := New()
	path := filepath.Join(t.TempDir(), "note.txt")

	status := lib.WriteText(path, "remember the milk")
	if errors.IsErrorText(status) {
		t.Fatalf("WriteText = %q, want success status", status)
	}
	if status != path {
		t.Errorf("WriteText = %q, want the file name %q", status, path)
	}

	// The success status feeds straight back into read.
	got := lib.ReadText(status)
	if got != "remember the milk" {
		t.Errorf("ReadText(WriteText(...)) = %q, want %q", got, "remember the milk")
	}
}

func TestScriptSurface_Errors(t *testing.T) {
	lib := New()
	missing := filepath.Join(t.TempDir(), "nope.txt")

	got := lib.ReadText(missing)
	if !errors.IsErrorText(got) {
		t.Fatalf("ReadText(missing) = %q, want error text", got)
	}
	if !strings.HasPrefix(got, errors.ErrorPrefix) {
		t.Errorf("ReadText(missing) = %q, want %q prefix", got, errors.ErrorPrefix)
	}
	if !strings.Contains(got, missing) {
		t.Errorf("ReadText(missing) = %q, does not name the file", got)
	}

	got = lib.WriteText(filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt"), "x")
	if !errors.IsErrorText(got) {
		t.Errorf("WriteText into missing directory = %q, want error text", got)
	}
}

func TestRegister(t *testing.T) {
	lib := New()
	funcs := lib.Register()
	for _, name := range []string{"write", "read"} {
		if funcs[name] == nil {
			t.Errorf("Register() missing %q", name)
		}
	}

	path := filepath.Join(t.TempDir(), "via-script.txt")
	out, err := funcs["write"]([]string{path, "payload"})
	if err != nil {
		t.Fatalf("write error: %v", err)
	}
	if out != path {
		t.Errorf("write = %q, want %q", out, path)
	}
	out, err = funcs["read"]([]string{path})
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if out != "payload" {
		t.Errorf("read = %q, want %q", out, "payload")
	}
}

func TestRegister_ArgCounts(t *testing.T) {
	funcs := New().Register()

	tests := []struct {
		name string
		fn   string
		args []string
		kind errors.Kind
	}{
		{name: "write missing data", fn: "write", args: []string{"f.txt"}, kind: errors.KindMissingArgument},
		{name: "write no args", fn: "write", args: nil, kind: errors.KindMissingArgument},
		{name: "write extra arg", fn: "write", args: []string{"f.txt", "a", "b"}, kind: errors.KindInvalidInput},
		{name: "read no args", fn: "read", args: nil, kind: errors.KindMissingArgument},
		{name: "read extra arg", fn: "read", args: []string{"f.txt", "x"}, kind: errors.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := funcs[tt.fn](tt.args)
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("%s(%v) error = %v, want kind %v", tt.fn, tt.args, err, tt.kind)
			}
		})
	}
}
