package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Op indicates which operation the error occurred in
type Op string

const (
	OpDecode  Op = "decode"  // text to collection
	OpEncode  Op = "encode"  // collection to text
	OpCreate  Op = "create"  // blank collection
	OpAdd     Op = "add"     // insert or bind
	OpRemove  Op = "remove"  // delete
	OpGet     Op = "get"     // lookup
	OpCall    Op = "call"    // library dispatch
	OpRead    Op = "read"    // file read
	OpWrite   Op = "write"   // file write
	OpConvert Op = "convert" // scalar coercion
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidInput         Kind = "invalid_input"
	KindUnsupportedShape     Kind = "unsupported_shape"
	KindMissingArgument      Kind = "missing_argument"
	KindConflictingArguments Kind = "conflicting_arguments"
	KindIndexOutOfRange      Kind = "index_out_of_range"
	KindNotFound             Kind = "not_found"
	KindRegistration         Kind = "registration"
	KindIO                   Kind = "io"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value  any
	Cause  error
	Op     Op
	Kind   Kind
	Shape  string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Shape != "" {
		b.WriteString(": shape ")
		b.WriteString(e.Shape)
	}

	if e.Detail != "" {
		if e.Shape != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target with an empty Op
// matches any operation of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Op != "" && t.Op != e.Op {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err is or wraps an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Path sets the operation path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Shape sets the collection shape involved
func (b *Builder) Shape(s string) *Builder {
	b.err.Shape = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidInput creates an invalid input error
func InvalidInput(op Op, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// DecodeFailed creates an invalid input error for text that is not a
// collection encoding
func DecodeFailed(op Op, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidInput,
		Detail: "not a valid collection encoding",
		Cause:  cause,
	}
}

// UnsupportedShape creates an error for a shape name no collection has
func UnsupportedShape(op Op, shape string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindUnsupportedShape,
		Shape:  shape,
		Detail: fmt.Sprintf("unsupported collection shape %q", shape),
	}
}

// WrongShape creates an error for a collection of the other shape reaching
// a shape-pinned boundary
func WrongShape(op Op, path []string, want, got string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindUnsupportedShape,
		Path:   path,
		Shape:  got,
		Detail: fmt.Sprintf("expected %s collection, got %s", want, got),
	}
}

// MissingArgument creates a missing argument error
func MissingArgument(op Op, path []string, name string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindMissingArgument,
		Path:   path,
		Detail: fmt.Sprintf("required argument %q missing", name),
	}
}

// ConflictingArguments creates an error for arguments that cannot be combined
func ConflictingArguments(op Op, path []string, a, b string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindConflictingArguments,
		Path:   path,
		Detail: fmt.Sprintf("arguments %q and %q cannot be combined", a, b),
	}
}

// IndexOutOfRange creates an out of range error
func IndexOutOfRange(op Op, path []string, index, length int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindIndexOutOfRange,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of range (length %d)", index, length),
		Value:  index,
	}
}

// NotFound creates a not-found error
func NotFound(op Op, what, name string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Registration creates a registration error
func Registration(op Op, library, name string, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindRegistration,
		Detail: fmt.Sprintf("register %s:%s", library, name),
		Cause:  cause,
	}
}

// IO creates a file operation error carrying the file name
func IO(op Op, name string, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindIO,
		Detail: fmt.Sprintf("file %q", name),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(op Op, kind Kind, cause error, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
