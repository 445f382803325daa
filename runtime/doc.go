// Package runtime provides the library registry and the script boundary.
//
// A script statement like
//
//	set t = table:add(t, "e", 3443)
//
// reaches Go as a qualified name plus text arguments. The registry resolves
// "table:add" to the registered function and dispatches. Two surfaces exist:
//
//	Call    - typed dispatch, returns (string, error) for Go embedders
//	Invoke  - script dispatch, flattens hard failures to "Error: " text
//
// Libraries implement the root package's Library interface and register once
// at startup, usually through Default(), which preloads the built-in array,
// table, file, and type libraries. Dispatch after registration is read-only
// and safe for concurrent use.
package runtime
