package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Op:     OpAdd,
				Kind:   KindMissingArgument,
				Path:   []string{"table", "add"},
				Shape:  "mapping",
				Detail: "required argument \"value\" missing",
			},
			contains: []string{"[add]", "missing_argument", "table.add", "mapping", "value"},
		},
		{
			name: "minimal error",
			err: &Error{
				Op:   OpGet,
				Kind: KindIndexOutOfRange,
			},
			contains: []string{"[get]", "index_out_of_range"},
		},
		{
			name: "error with cause",
			err: &Error{
				Op:     OpRead,
				Kind:   KindIO,
				Detail: "file \"data.txt\"",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[read]", "io", "data.txt", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Op:    OpDecode,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Op:   OpAdd,
		Kind: KindIndexOutOfRange,
		Path: []string{"array"},
	}

	// Same op and kind
	if !err.Is(&Error{Op: OpAdd, Kind: KindIndexOutOfRange}) {
		t.Error("Is should match same op and kind")
	}

	// Empty op matches any op of the same kind
	if !err.Is(&Error{Kind: KindIndexOutOfRange}) {
		t.Error("Is should match empty op wildcard")
	}

	// Different op
	if err.Is(&Error{Op: OpRemove, Kind: KindIndexOutOfRange}) {
		t.Error("Is should not match different op")
	}

	// Different kind
	if err.Is(&Error{Op: OpAdd, Kind: KindInvalidInput}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Op: OpAdd, Kind: KindIndexOutOfRange}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestIsKind(t *testing.T) {
	err := IndexOutOfRange(OpAdd, []string{"array"}, 10, 5)

	if !IsKind(err, KindIndexOutOfRange) {
		t.Error("IsKind should match the error's kind")
	}
	if IsKind(err, KindInvalidInput) {
		t.Error("IsKind should not match a different kind")
	}
	if IsKind(errors.New("plain"), KindInvalidInput) {
		t.Error("IsKind should not match a plain error")
	}

	// Wrapped error
	wrapped := Wrap(OpCall, KindInvalidInput, err, "dispatch failed")
	if !IsKind(wrapped, KindInvalidInput) {
		t.Error("IsKind should match the outermost kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(OpRemove, KindConflictingArguments).
		Path("array", "remove").
		Shape("sequence").
		Value(42).
		Cause(cause).
		Detail("cannot combine %s and %s", "value", "index").
		Build()

	if err.Op != OpRemove {
		t.Errorf("Op = %v, want %v", err.Op, OpRemove)
	}
	if err.Kind != KindConflictingArguments {
		t.Errorf("Kind = %v, want %v", err.Kind, KindConflictingArguments)
	}
	if len(err.Path) != 2 || err.Path[0] != "array" || err.Path[1] != "remove" {
		t.Errorf("Path = %v, want [array remove]", err.Path)
	}
	if err.Shape != "sequence" {
		t.Errorf("Shape = %v, want 'sequence'", err.Shape)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "cannot combine value and index" {
		t.Errorf("Detail = %v, want 'cannot combine value and index'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(OpAdd, "not a collection")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("DecodeFailed", func(t *testing.T) {
		cause := errors.New("unexpected token")
		err := DecodeFailed(OpGet, cause)
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
		if !errors.Is(err, cause) {
			t.Error("DecodeFailed should wrap its cause")
		}
	})

	t.Run("UnsupportedShape", func(t *testing.T) {
		err := UnsupportedShape(OpCreate, "stack")
		if err.Kind != KindUnsupportedShape {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedShape)
		}
		if !containsSubstring(err.Detail, "stack") {
			t.Errorf("Detail = %v, should contain shape name", err.Detail)
		}
	})

	t.Run("WrongShape", func(t *testing.T) {
		err := WrongShape(OpGet, []string{"array", "get"}, "sequence", "mapping")
		if err.Kind != KindUnsupportedShape {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedShape)
		}
		if err.Shape != "mapping" {
			t.Errorf("Shape = %v, want 'mapping'", err.Shape)
		}
		if !containsSubstring(err.Detail, "sequence") {
			t.Errorf("Detail = %v, should contain wanted shape", err.Detail)
		}
	})

	t.Run("MissingArgument", func(t *testing.T) {
		err := MissingArgument(OpAdd, []string{"table", "add"}, "value")
		if err.Kind != KindMissingArgument {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMissingArgument)
		}
		if !containsSubstring(err.Detail, "value") {
			t.Errorf("Detail = %v, should contain argument name", err.Detail)
		}
	})

	t.Run("ConflictingArguments", func(t *testing.T) {
		err := ConflictingArguments(OpRemove, []string{"remove"}, "value", "index")
		if err.Kind != KindConflictingArguments {
			t.Errorf("Kind = %v, want %v", err.Kind, KindConflictingArguments)
		}
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		err := IndexOutOfRange(OpAdd, []string{"sequence"}, 10, 5)
		if err.Kind != KindIndexOutOfRange {
			t.Errorf("Kind = %v, want %v", err.Kind, KindIndexOutOfRange)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
		if !containsSubstring(err.Detail, "10") || !containsSubstring(err.Detail, "5") {
			t.Errorf("Detail = %v, should contain index and length", err.Detail)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(OpCall, "function", "array:flatten")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !containsSubstring(err.Detail, "array:flatten") {
			t.Errorf("Detail = %v, should contain name", err.Detail)
		}
	})

	t.Run("Registration", func(t *testing.T) {
		cause := errors.New("duplicate")
		err := Registration(OpCall, "table", "add", cause)
		if err.Kind != KindRegistration {
			t.Errorf("Kind = %v, want %v", err.Kind, KindRegistration)
		}
		if !containsSubstring(err.Detail, "table:add") {
			t.Errorf("Detail = %v, should contain library and name", err.Detail)
		}
	})

	t.Run("IO", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := IO(OpWrite, "out.txt", cause)
		if err.Kind != KindIO {
			t.Errorf("Kind = %v, want %v", err.Kind, KindIO)
		}
		if !containsSubstring(err.Detail, "out.txt") {
			t.Errorf("Detail = %v, should contain file name", err.Detail)
		}
		if !errors.Is(err, cause) {
			t.Error("IO should wrap its cause")
		}
	})
}

func containsSubstring(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && containsSubstringHelper(s, substr)))
}

func containsSubstringHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
