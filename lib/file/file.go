// Package file provides the file library. Its script surface never fails:
// every I/O fault flattens to "Error: " text containing the file name,
// because a script can hold nothing but text. Go callers use the typed
// Write and Read underneath.
package file

import (
	"os"

	"go.uber.org/zap"

	elruntime "github.com/extendable-lang/el-runtime"
	"github.com/extendable-lang/el-runtime/errors"
)

// Write stores data in the named file, replacing any previous content.
func Write(name, data string) error {
	if name == "" {
		return errors.MissingArgument(errors.OpWrite, []string{"file", "write"}, "name")
	}
	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		return errors.IO(errors.OpWrite, name, err)
	}
	return nil
}

// Read returns the named file's content.
func Read(name string) (string, error) {
	if name == "" {
		return "", errors.MissingArgument(errors.OpRead, []string{"file", "read"}, "name")
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", errors.IO(errors.OpRead, name, err)
	}
	return string(data), nil
}

// Library is the file library.
type Library struct{}

func New() *Library {
	return &Library{}
}

// Name returns the script prefix.
func (l *Library) Name() string {
	return "file"
}

// WriteText is the script surface of Write. On success it returns the file
// name, so the result feeds straight into file:read. Failures come back as
// error text, never as a Go error.
func (l *Library) WriteText(name, data string) string {
	if err := Write(name, data); err != nil {
		Logger().Warn("write failed",
			zap.String("file", name),
			zap.Error(err))
		return errors.Flatten(err)
	}
	return name
}

// ReadText is the script surface of Read: the file content on success,
// error text on failure.
func (l *Library) ReadText(name string) string {
	content, err := Read(name)
	if err != nil {
		Logger().Warn("read failed",
			zap.String("file", name),
			zap.Error(err))
		return errors.Flatten(err)
	}
	return content
}

// Register returns the script-callable surface. Malformed calls are typed
// errors for the dispatcher; I/O faults are already flattened text.
func (l *Library) Register() map[string]elruntime.Function {
	return map[string]elruntime.Function{
		"write": func(args []string) (string, error) {
			if err := checkArgs("write", args, "name", "data"); err != nil {
				return "", err
			}
			return l.WriteText(args[0], args[1]), nil
		},
		"read": func(args []string) (string, error) {
			if err := checkArgs("read", args, "name"); err != nil {
				return "", err
			}
			return l.ReadText(args[0]), nil
		},
	}
}

// Describe lists the script surface for consoles.
func (l *Library) Describe() []elruntime.Signature {
	return []elruntime.Signature{
		{Name: "write", Params: []string{"name", "data"}, Doc: "write data to the named file, returns the name"},
		{Name: "read", Params: []string{"name"}, Doc: "content of the named file"},
	}
}

func checkArgs(fn string, args []string, names ...string) error {
	if len(args) < len(names) {
		return errors.MissingArgument(errors.OpCall, []string{"file", fn}, names[len(args)])
	}
	if len(args) > len(names) {
		return errors.New(errors.OpCall, errors.KindInvalidInput).
			Path("file", fn).
			Detail("takes %d arguments, got %d", len(names), len(args)).
			Build()
	}
	return nil
}
