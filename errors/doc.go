// Package errors provides structured error types for the el-runtime library.
//
// Errors are categorized by Op (which operation failed) and Kind (error
// category). The Error type includes rich context: operation path, the
// collection shape involved, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpAdd, errors.KindMissingArgument).
//		Path("table", "add").
//		Shape("mapping").
//		Detail("mapping add requires a value").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.IndexOutOfRange(errors.OpAdd, path, 10, 5)
//	err := errors.UnsupportedShape(errors.OpCreate, "stack")
//
// All errors implement the standard error interface and support errors.Is/As.
// Only hard failures become errors: InvalidInput, UnsupportedShape,
// MissingArgument, ConflictingArguments, and IndexOutOfRange on an explicit
// add index. Soft absences (missing key, out-of-range read) never surface
// here; they are no-ops or null results logged as warnings by the caller.
package errors
