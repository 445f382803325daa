// Package engine implements the shape-polymorphic collection operations.
//
// Every operation takes and returns textual encodings, never decoded
// structures: a script holds a collection only as text, and rebinding the
// returned text is the script's whole notion of mutation. The engine decodes
// once per call, dispatches on the decoded shape, mutates a copy, and
// re-encodes.
//
// # Operations
//
//	Create(shape)                    - blank encoding for sequence or mapping
//	Add(text, primary, val, index)   - bind a key (mapping) or insert/append (sequence)
//	Remove(text, target, index)      - delete by key, value, or index
//	Get(text, key, index)            - look up by key or index
//	Length(text), Shape(text)        - inspect without mutating
//
// Each mutating operation has an *As variant (AddAs, RemoveAs, GetAs,
// LengthAs) taking a shape pin. The pin is for facades that promise a single
// shape: a collection of any other shape is rejected with an
// unsupported_shape failure before the operation dispatches. AnyShape
// disables the pin and restores full polymorphic dispatch.
//
// # Failure Policy
//
// Absence is never an error. A missing key, an absent value, or an
// out-of-range read or remove index is a no-op or a nil result, logged as a
// warning; the returned encoding is always valid for the next statement.
// Hard failures are reserved for malformed input (text that does not decode
// to a collection), ambiguous or missing arguments, and an explicit add
// index outside 0..length.
//
// Operations are pure transforms with no shared state, so concurrent calls
// on independent inputs need no locking.
package engine
