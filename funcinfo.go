package devlog

import (
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/philipp01105/devlog/core"
)

// funcInfo identifies a wrapped function.
type funcInfo struct {
	// module is the declaring package path, e.g. github.com/acme/billing.
	module string
	// name is the function's name inside module, e.g. Charge,
	// (*Client).Do or Run.func1.
	name   string
	caller core.CallerInfo
}

func inspect(op string, v reflect.Value) (funcInfo, error) {
	if v.Kind() != reflect.Func || v.IsNil() {
		return funcInfo{}, configErrorf(op, ErrNotAFunction, "got %s", v.Kind())
	}

	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return funcInfo{module: "unknown", name: "unknown"}, nil
	}

	full := fn.Name()
	module, name := splitFuncName(full)
	file, line := fn.FileLine(fn.Entry())

	return funcInfo{
		module: module,
		name:   name,
		caller: core.CallerInfo{
			File:      file,
			ShortFile: filepath.Base(file),
			Line:      line,
			Function:  full,
			Defined:   true,
		},
	}, nil
}

// splitFuncName splits a runtime function name at the first dot after
// the last slash. Method values carry a -fm suffix, which is dropped, and
// dots in the last path element are escaped as %2e.
func splitFuncName(full string) (module, name string) {
	full = strings.TrimSuffix(full, "-fm")
	slash := strings.LastIndex(full, "/")
	dot := strings.Index(full[slash+1:], ".")
	if dot < 0 {
		return full, full
	}
	dot += slash + 1
	return strings.ReplaceAll(full[:dot], "%2e", "."), full[dot+1:]
}
