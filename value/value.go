// Package value defines the tagged collection model shared by every library.
//
// A collection is either a Sequence (ordered scalars, zero-based index) or a
// Mapping (unique string keys). Scripts never see these types directly; they
// hold collections as text and the codec package converts at the boundary.
package value

// Shape identifies the logical form of a collection.
type Shape string

const (
	ShapeSequence Shape = "sequence"
	ShapeMapping  Shape = "mapping"
)

// Value is a collection-model value. Concrete types:
//
//	String   - text scalar
//	Int      - signed 64-bit integer scalar
//	Float    - 64-bit floating point scalar
//	Sequence - ordered list of values
//	Mapping  - string-keyed values
//
// Int and Float are distinct end to end: 3 and 3.0 decode, compare, and
// re-encode differently.
type Value interface {
	elValue() // sealed marker, only types in this package implement Value
}

// String is a text scalar.
type String string

// Int is an integer scalar.
type Int int64

// Float is a floating point scalar.
type Float float64

// Sequence is an ordered collection of values.
type Sequence []Value

// Mapping is a string-keyed collection of values.
type Mapping map[string]Value

func (String) elValue()   {}
func (Int) elValue()      {}
func (Float) elValue()    {}
func (Sequence) elValue() {}
func (Mapping) elValue()  {}

// ShapeOf returns the collection shape of v. The second return is false for
// scalars and nil.
func ShapeOf(v Value) (Shape, bool) {
	switch v.(type) {
	case Sequence:
		return ShapeSequence, true
	case Mapping:
		return ShapeMapping, true
	default:
		return "", false
	}
}

// IsScalar reports whether v is a leaf value rather than a collection.
func IsScalar(v Value) bool {
	switch v.(type) {
	case String, Int, Float:
		return true
	default:
		return false
	}
}

// Equal reports deep equality. Values of different concrete types are never
// equal, so Int(3) does not equal Float(3).
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case Sequence:
		bv, ok := b.(Sequence)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Mapping:
		bv, ok := b.(Mapping)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			w, present := bv[k]
			if !present || !Equal(v, w) {
				return false
			}
		}
		return true
	}
	return false
}
