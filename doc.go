// Package elruntime provides the data-representation layer of EL, a minimal
// library-driven scripting language.
//
// The interpreter for EL understands only variables, string literals, and
// arithmetic. Everything else, including the two container types, file
// access, and type coercion, arrives through library modules registered by
// name. Scripts hold a collection as a single text value and rebind it on
// every mutation, so each library function is a pure transform from script
// text to script text.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	elruntime/           Root package with the Library and capability interfaces
//	├── runtime/         Library registry, dispatch, and the script boundary
//	├── engine/          Shape-polymorphic collection operations over encodings
//	├── codec/           Text encoding and decoding of collection values
//	├── value/           Tagged collection model (Sequence | Mapping) and scalars
//	├── lib/array/       Sequence facade (create, append, insert, remove, get)
//	├── lib/table/       Mapping facade (create, add, remove, get)
//	├── lib/file/        File I/O with the script error-string convention
//	├── lib/typeconv/    Scalar coercion library (toint, tofloat)
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Dispatch library calls the way a script statement would:
//
//	reg, err := runtime.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	t := reg.Invoke("table:create")
//	t = reg.Invoke("table:add", t, "e", "3443")
//	t = reg.Invoke("table:add", t, "tert", "ea sports!")
//	t = reg.Invoke("table:remove", t, "e")
//	fmt.Println(reg.Invoke("table:get", t, "tert")) // ea sports!
//
// Invoke never returns a Go error: hard failures come back as text with the
// "Error: " prefix, which is all a script can hold. Use the typed Call when
// embedding in Go code that wants real errors.
//
// # Value Semantics
//
// A collection has no identity beyond its current encoding. Operations
// decode, mutate a copy, and re-encode, so two variables never share state
// and identical inputs always produce identical outputs. Absent keys and
// out-of-range reads are soft: they produce a no-op or a null, never a hard
// failure.
package elruntime
