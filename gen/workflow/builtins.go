package workflow

import (
	"sort"

	"github.com/viant/fluxor/model/types"

	"github.com/viant/firestore-gen/internal/matcher"

	// Built-in action packages with parameter-less New()
	nop "github.com/viant/fluxor/service/action/nop"
	printer "github.com/viant/fluxor/service/action/printer"
	exec "github.com/viant/fluxor/service/action/system/exec"
	secret "github.com/viant/fluxor/service/action/system/secret"
	storage "github.com/viant/fluxor/service/action/system/storage"
)

// builtinFactories lists the Fluxor action services a build workflow can use
// next to the generator, keyed by service name.
var builtinFactories = map[string]func() types.Service{
	"nop":            func() types.Service { return nop.New() },
	"printer":        func() types.Service { return printer.New() },
	"system/exec":    func() types.Service { return exec.New() },
	"system/storage": func() types.Service { return storage.New() },
	"system/secret":  func() types.Service { return secret.New() },
}

// BuiltinNames returns the names of the available built-in services, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinFactories))
	for name := range builtinFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveBuiltinServices converts patterns ("*", "system/" or an exact name)
// into service instances in name order.
func resolveBuiltinServices(patterns []string) []types.Service {
	var out []types.Service
	for _, name := range BuiltinNames() {
		if matcher.Any(patterns, name) {
			out = append(out, builtinFactories[name]())
		}
	}
	return out
}
