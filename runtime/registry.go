package runtime

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	elruntime "github.com/extendable-lang/el-runtime"
	"github.com/extendable-lang/el-runtime/errors"
)

// Registry holds the library functions a script can reach as
// "library:function". Registration happens at startup; dispatch is
// read-only and safe for concurrent use.
type Registry struct {
	funcs map[string]map[string]elruntime.Function
	sigs  map[string][]elruntime.Signature
	mu    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]map[string]elruntime.Function),
		sigs:  make(map[string][]elruntime.Signature),
	}
}

// RegisterLibrary adds every function a library exposes. Registering the
// same library name twice is a hard failure; the first registration wins.
func (r *Registry) RegisterLibrary(lib elruntime.Library) error {
	name := lib.Name()
	if name == "" {
		return errors.InvalidInput(errors.OpCall, "library name cannot be empty")
	}
	if strings.Contains(name, ":") {
		return errors.InvalidInput(errors.OpCall, "library name cannot contain ':'")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[name]; exists {
		return errors.New(errors.OpCall, errors.KindRegistration).
			Detail("library %q already registered", name).
			Build()
	}

	fns := lib.Register()
	bucket := make(map[string]elruntime.Function, len(fns))
	for fnName, fn := range fns {
		if fnName == "" || fn == nil {
			return errors.Registration(errors.OpCall, name, fnName, errors.InvalidInput(errors.OpCall, "empty function name or nil handler"))
		}
		bucket[fnName] = fn
	}
	r.funcs[name] = bucket

	if d, ok := lib.(elruntime.Describer); ok {
		r.sigs[name] = d.Describe()
	}
	return nil
}

// RegisterFunc adds a single function, creating the library bucket if
// needed. An existing function of the same name is replaced.
func (r *Registry) RegisterFunc(library, name string, fn elruntime.Function) error {
	if library == "" {
		return errors.InvalidInput(errors.OpCall, "library name cannot be empty")
	}
	if name == "" {
		return errors.InvalidInput(errors.OpCall, "function name cannot be empty")
	}
	if fn == nil {
		return errors.InvalidInput(errors.OpCall, "handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.funcs[library] == nil {
		r.funcs[library] = make(map[string]elruntime.Function)
	}
	r.funcs[library][name] = fn
	return nil
}

// Lookup resolves a qualified "library:function" name.
func (r *Registry) Lookup(qualified string) (elruntime.Function, error) {
	lib, fn, found := strings.Cut(qualified, ":")
	if !found || lib == "" || fn == "" {
		return nil, errors.InvalidInput(errors.OpCall, `function name must have the form "library:function"`)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	bucket, ok := r.funcs[lib]
	if !ok {
		return nil, errors.NotFound(errors.OpCall, "library", lib)
	}
	f, ok := bucket[fn]
	if !ok {
		return nil, errors.NotFound(errors.OpCall, "function", qualified)
	}
	return f, nil
}

// Call dispatches a qualified call and returns the typed result. Use this
// when embedding in Go code that wants real errors.
func (r *Registry) Call(qualified string, args ...string) (string, error) {
	f, err := r.Lookup(qualified)
	if err != nil {
		return "", err
	}
	return f(args)
}

// Invoke is the script boundary: it dispatches like Call, but a hard
// failure comes back as "Error: "-prefixed text because the script layer
// has no error type. The typed error is logged before it is flattened.
func (r *Registry) Invoke(qualified string, args ...string) string {
	out, err := r.Call(qualified, args...)
	if err != nil {
		Logger().Error("library call failed",
			zap.String("function", qualified),
			zap.Error(err))
		return errors.Flatten(err)
	}
	return out
}

// Libraries returns registered library names in sorted order.
func (r *Registry) Libraries() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Functions returns a library's function names in sorted order.
func (r *Registry) Functions(library string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bucket := r.funcs[library]
	names := make([]string, 0, len(bucket))
	for name := range bucket {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Signatures returns the described signatures of a library, if it provided
// any, in Describe order.
func (r *Registry) Signatures(library string) []elruntime.Signature {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sigs[library]
}
