// Package array provides the array library: a sequence-pinned facade over
// the collection engine. Scripts reach it as array:create, array:append,
// array:insert, array:remove, array:removevalue, array:get, and
// array:length. A mapping encoding handed to any operation is rejected at
// this boundary before the engine dispatches.
package array

import (
	elruntime "github.com/extendable-lang/el-runtime"
	"github.com/extendable-lang/el-runtime/codec"
	"github.com/extendable-lang/el-runtime/engine"
	"github.com/extendable-lang/el-runtime/errors"
	"github.com/extendable-lang/el-runtime/lib/typeconv"
	"github.com/extendable-lang/el-runtime/value"
)

// Library is the array library.
type Library struct{}

func New() *Library {
	return &Library{}
}

// Name returns the script prefix.
func (l *Library) Name() string {
	return "array"
}

// Create returns a blank sequence encoding.
func (l *Library) Create() (string, error) {
	return engine.Create(string(value.ShapeSequence))
}

// Append adds v at the end and returns the new encoding.
func (l *Library) Append(text string, v value.Value) (string, error) {
	return engine.AddAs(value.ShapeSequence, text, v, nil, nil)
}

// Insert adds v at index, shifting later elements. The index must satisfy
// 0 <= index <= length.
func (l *Library) Insert(text string, v value.Value, index int) (string, error) {
	return engine.AddAs(value.ShapeSequence, text, v, nil, &index)
}

// Remove deletes the element at index. An out-of-range index is a warned
// no-op returning text unchanged.
func (l *Library) Remove(text string, index int) (string, error) {
	return engine.RemoveAs(value.ShapeSequence, text, nil, &index)
}

// RemoveValue deletes the first occurrence of v. An absent value is a
// warned no-op returning text unchanged.
func (l *Library) RemoveValue(text string, v value.Value) (string, error) {
	return engine.RemoveAs(value.ShapeSequence, text, v, nil)
}

// Get returns the element at index, or nil when the index is out of range.
func (l *Library) Get(text string, index int) (value.Value, error) {
	return engine.GetAs(value.ShapeSequence, text, nil, &index)
}

// Length returns the element count.
func (l *Library) Length(text string) (int, error) {
	return engine.LengthAs(value.ShapeSequence, text)
}

// Register returns the script-callable surface. Collections travel as
// encodings, element values as literal text, and a null get result crosses
// the boundary as empty text.
func (l *Library) Register() map[string]elruntime.Function {
	return map[string]elruntime.Function{
		"create": func(args []string) (string, error) {
			if err := checkArgs("create", args); err != nil {
				return "", err
			}
			return l.Create()
		},
		"append": func(args []string) (string, error) {
			if err := checkArgs("append", args, "array", "value"); err != nil {
				return "", err
			}
			return l.Append(args[0], codec.ParseScalar(args[1]))
		},
		"insert": func(args []string) (string, error) {
			if err := checkArgs("insert", args, "array", "value", "index"); err != nil {
				return "", err
			}
			idx, err := scriptIndex(args[2])
			if err != nil {
				return "", err
			}
			return l.Insert(args[0], codec.ParseScalar(args[1]), idx)
		},
		"remove": func(args []string) (string, error) {
			if err := checkArgs("remove", args, "array", "index"); err != nil {
				return "", err
			}
			idx, err := scriptIndex(args[1])
			if err != nil {
				return "", err
			}
			return l.Remove(args[0], idx)
		},
		"removevalue": func(args []string) (string, error) {
			if err := checkArgs("removevalue", args, "array", "value"); err != nil {
				return "", err
			}
			return l.RemoveValue(args[0], codec.ParseScalar(args[1]))
		},
		"get": func(args []string) (string, error) {
			if err := checkArgs("get", args, "array", "index"); err != nil {
				return "", err
			}
			idx, err := scriptIndex(args[1])
			if err != nil {
				return "", err
			}
			v, err := l.Get(args[0], idx)
			if err != nil {
				return "", err
			}
			return codec.Text(v)
		},
		"length": func(args []string) (string, error) {
			if err := checkArgs("length", args, "array"); err != nil {
				return "", err
			}
			n, err := l.Length(args[0])
			if err != nil {
				return "", err
			}
			return codec.Text(value.Int(n))
		},
	}
}

// Describe lists the script surface for consoles.
func (l *Library) Describe() []elruntime.Signature {
	return []elruntime.Signature{
		{Name: "create", Params: nil, Doc: "new empty array"},
		{Name: "append", Params: []string{"array", "value"}, Doc: "add value at the end"},
		{Name: "insert", Params: []string{"array", "value", "index"}, Doc: "add value at index"},
		{Name: "remove", Params: []string{"array", "index"}, Doc: "delete the element at index"},
		{Name: "removevalue", Params: []string{"array", "value"}, Doc: "delete the first occurrence of value"},
		{Name: "get", Params: []string{"array", "index"}, Doc: "element at index, empty when out of range"},
		{Name: "length", Params: []string{"array"}, Doc: "element count"},
	}
}

func scriptIndex(s string) (int, error) {
	n, err := typeconv.ToInt(s)
	if err != nil {
		return 0, errors.Wrap(errors.OpCall, errors.KindInvalidInput, err, "index must be an integer")
	}
	return int(n), nil
}

func checkArgs(fn string, args []string, names ...string) error {
	if len(args) < len(names) {
		return errors.MissingArgument(errors.OpCall, []string{"array", fn}, names[len(args)])
	}
	if len(args) > len(names) {
		return errors.New(errors.OpCall, errors.KindInvalidInput).
			Path("array", fn).
			Detail("takes %d arguments, got %d", len(names), len(args)).
			Build()
	}
	return nil
}
