package runtime

import (
	elruntime "github.com/extendable-lang/el-runtime"
	"github.com/extendable-lang/el-runtime/lib/array"
	"github.com/extendable-lang/el-runtime/lib/file"
	"github.com/extendable-lang/el-runtime/lib/table"
	"github.com/extendable-lang/el-runtime/lib/typeconv"
)

// Default returns a registry preloaded with the built-in libraries:
// array, table, file, and type.
func Default() (*Registry, error) {
	r := NewRegistry()
	for _, lib := range []elruntime.Library{
		array.New(),
		table.New(),
		file.New(),
		typeconv.New(),
	} {
		if err := r.RegisterLibrary(lib); err != nil {
			return nil, err
		}
	}
	return r, nil
}
