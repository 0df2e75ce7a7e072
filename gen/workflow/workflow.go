package workflow

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/x"

	"github.com/viant/firestore-gen/gen"
	"github.com/viant/firestore-gen/gen/action"
)

// Engine bundles a Fluxor service and runtime with the generator action and
// the selected built-in actions registered.
type Engine struct {
	Service    *fluxor.Service
	Runtime    *fluxor.Runtime
	Extensions []types.Service
}

// New assembles the Fluxor engine. Additional options are appended last so
// callers can override defaults.
func New(generator *gen.Service, opts ...fluxor.Option) *Engine {
	e := &Engine{}
	e.Extensions = append(e.Extensions, action.New(generator))
	e.Extensions = append(e.Extensions, resolveBuiltinServices(generator.Config().Builtins)...)

	options := []fluxor.Option{
		fluxor.WithExtensionTypes(
			x.NewType(reflect.TypeOf(gen.Request{})),
			x.NewType(reflect.TypeOf(gen.Response{})),
		),
		fluxor.WithExtensionServices(e.Extensions...),
	}
	options = append(options, opts...)

	e.Service = fluxor.New(options...)
	e.Runtime = e.Service.Runtime()
	return e
}

// Run loads the workflow at location, runs it with the initial state and
// waits up to timeout for the output.
func (e *Engine) Run(ctx context.Context, location string, state map[string]interface{}, timeout time.Duration) (string, interface{}, error) {
	if err := e.Runtime.Start(ctx); err != nil {
		return "", nil, fmt.Errorf("start runtime: %w", err)
	}
	defer e.Runtime.Shutdown(ctx)

	wf, err := e.Runtime.LoadWorkflow(ctx, location)
	if err != nil {
		return "", nil, fmt.Errorf("load workflow: %w", err)
	}
	if state == nil {
		state = map[string]interface{}{}
	}
	process, wait, err := e.Runtime.StartProcess(ctx, wf, state)
	if err != nil {
		return "", nil, fmt.Errorf("start process: %w", err)
	}
	output, err := wait(ctx, timeout)
	if err != nil {
		return process.ID, nil, fmt.Errorf("wait for process: %w", err)
	}
	return process.ID, output, nil
}
