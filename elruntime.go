package elruntime

// Function is a script-callable library function. Arguments and result are
// script text: collections travel as their encodings, scalars as bare text.
// A returned error is a hard failure for the dispatcher to flatten at the
// script boundary.
type Function func(args []string) (string, error)

// Library is the interface for registered library modules.
// Register returns the functions a script reaches as "name:function".
type Library interface {
	// Name returns the library prefix scripts use (e.g. "array", "table").
	Name() string
	// Register returns the library's functions keyed by bare function name.
	Register() map[string]Function
}

// Signature describes one library function for listings and consoles.
type Signature struct {
	Name   string
	Params []string
	Doc    string
}

// Describer is an optional Library extension that exposes signatures.
type Describer interface {
	Describe() []Signature
}

// Coercer is the scalar type-coercion capability consumed at script
// boundaries that need typed numbers from text.
type Coercer interface {
	ToInt(s string) (int64, error)
	ToFloat(s string) (float64, error)
}

// RandSource is the process random-integer capability. It is consumed as a
// pure function and never touches collection state.
type RandSource interface {
	RandInt(lo, hi int64) (int64, error)
}
