// Package table provides the table library: a mapping-pinned facade over
// the collection engine. Scripts reach it as table:create, table:add,
// table:remove, table:get, and table:length. A sequence encoding handed to
// any operation is rejected at this boundary before the engine dispatches.
package table

import (
	elruntime "github.com/extendable-lang/el-runtime"
	"github.com/extendable-lang/el-runtime/codec"
	"github.com/extendable-lang/el-runtime/engine"
	"github.com/extendable-lang/el-runtime/errors"
	"github.com/extendable-lang/el-runtime/value"
)

// Library is the table library.
type Library struct{}

func New() *Library {
	return &Library{}
}

// Name returns the script prefix.
func (l *Library) Name() string {
	return "table"
}

// Create returns a blank mapping encoding.
func (l *Library) Create() (string, error) {
	return engine.Create(string(value.ShapeMapping))
}

// Add binds key to v and returns the new encoding. An existing key is
// overwritten silently.
func (l *Library) Add(text, key string, v value.Value) (string, error) {
	return engine.AddAs(value.ShapeMapping, text, value.String(key), v, nil)
}

// Remove deletes key. An absent key is a warned no-op returning text
// unchanged.
func (l *Library) Remove(text, key string) (string, error) {
	return engine.RemoveAs(value.ShapeMapping, text, value.String(key), nil)
}

// Get returns the value bound to key, or nil when the key is absent.
func (l *Library) Get(text, key string) (value.Value, error) {
	return engine.GetAs(value.ShapeMapping, text, &key, nil)
}

// Length returns the key count.
func (l *Library) Length(text string) (int, error) {
	return engine.LengthAs(value.ShapeMapping, text)
}

// Register returns the script-callable surface. Collections travel as
// encodings, values as literal text, and a null get result crosses the
// boundary as empty text.
func (l *Library) Register() map[string]elruntime.Function {
	return map[string]elruntime.Function{
		"create": func(args []string) (string, error) {
			if err := checkArgs("create", args); err != nil {
				return "", err
			}
			return l.Create()
		},
		"add": func(args []string) (string, error) {
			if err := checkArgs("add", args, "table", "key", "value"); err != nil {
				return "", err
			}
			return l.Add(args[0], args[1], codec.ParseScalar(args[2]))
		},
		"remove": func(args []string) (string, error) {
			if err := checkArgs("remove", args, "table", "key"); err != nil {
				return "", err
			}
			return l.Remove(args[0], args[1])
		},
		"get": func(args []string) (string, error) {
			if err := checkArgs("get", args, "table", "key"); err != nil {
				return "", err
			}
			v, err := l.Get(args[0], args[1])
			if err != nil {
				return "", err
			}
			return codec.Text(v)
		},
		"length": func(args []string) (string, error) {
			if err := checkArgs("length", args, "table"); err != nil {
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
		{Name: "create", Params: nil, Doc: "new empty table"},
		{Name: "add", Params: []string{"table", "key", "value"}, Doc: "bind key to value, overwriting"},
		{Name: "remove", Params: []string{"table", "key"}, Doc: "delete key"},
		{Name: "get", Params: []string{"table", "key"}, Doc: "value bound to key, empty when absent"},
		{Name: "length", Params: []string{"table"}, Doc: "key count"},
	}
}

func checkArgs(fn string, args []string, names ...string) error {
	if len(args) < len(names) {
		return errors.MissingArgument(errors.OpCall, []string{"table", fn}, names[len(args)])
	}
	if len(args) > len(names) {
		return errors.New(errors.OpCall, errors.KindInvalidInput).
			Path("table", fn).
			Detail("takes %d arguments, got %d", len(names), len(args)).
			Build()
	}
	return nil
}
