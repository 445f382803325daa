// Package typeconv provides the type library: scalar coercion from script
// text to typed numbers. Scripts reach it as type:toint and type:tofloat;
// Go callers use it as the Coercer capability.
package typeconv

import (
	"github.com/spf13/cast"

	elruntime "github.com/extendable-lang/el-runtime"
	"github.com/extendable-lang/el-runtime/codec"
	"github.com/extendable-lang/el-runtime/errors"
	"github.com/extendable-lang/el-runtime/value"
)

// ToInt converts script text to an integer. Fractional text is a hard
// failure, not a truncation.
func ToInt(s string) (int64, error) {
	n, err := cast.ToInt64E(s)
	if err != nil {
		return 0, errors.New(errors.OpConvert, errors.KindInvalidInput).
			Detail("cannot convert %q to integer", s).
			Cause(err).
			Build()
	}
	return n, nil
}

// ToFloat converts script text to a float.
func ToFloat(s string) (float64, error) {
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, errors.New(errors.OpConvert, errors.KindInvalidInput).
			Detail("cannot convert %q to float", s).
			Cause(err).
			Build()
	}
	return f, nil
}

// Library is the type library. It implements the Coercer capability.
type Library struct{}

func New() *Library {
	return &Library{}
}

// Name returns the script prefix.
func (l *Library) Name() string {
	return "type"
}

func (l *Library) ToInt(s string) (int64, error) {
	return ToInt(s)
}

func (l *Library) ToFloat(s string) (float64, error) {
	return ToFloat(s)
}

// Register returns the script-callable surface.
func (l *Library) Register() map[string]elruntime.Function {
	return map[string]elruntime.Function{
		"toint": func(args []string) (string, error) {
			if err := oneArg("toint", args); err != nil {
				return "", err
			}
			n, err := ToInt(args[0])
			if err != nil {
				return "", err
			}
			return codec.Text(value.Int(n))
		},
		"tofloat": func(args []string) (string, error) {
			if err := oneArg("tofloat", args); err != nil {
				return "", err
			}
			f, err := ToFloat(args[0])
			if err != nil {
				return "", err
			}
			return codec.Text(value.Float(f))
		},
	}
}

func oneArg(fn string, args []string) error {
	if len(args) < 1 {
		return errors.MissingArgument(errors.OpConvert, []string{"type", fn}, "text")
	}
	if len(args) > 1 {
		return errors.New(errors.OpConvert, errors.KindInvalidInput).
			Path("type", fn).
			Detail("takes 1 argument, got %d", len(args)).
			Build()
	}
	return nil
}

// Describe lists the script surface for consoles.
func (l *Library) Describe() []elruntime.Signature {
	return []elruntime.Signature{
		{Name: "toint", Params: []string{"text"}, Doc: "convert text to an integer"},
		{Name: "tofloat", Params: []string{"text"}, Doc: "convert text to a float"},
	}
}
