package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/viant/firestore-gen/gen"
	"github.com/viant/firestore-gen/gen/action"
	"github.com/viant/firestore-gen/internal/conv"
)

// GenerateName is the MCP name of the generate tool.
var GenerateName = NewName(action.Name, action.MethodGenerate)

// entry holds metadata and execution handler for one MCP tool derived from
// an action method.
type entry struct {
	name         string
	description  string
	inputSchema  mcpschema.ToolInputSchema
	outputSchema *mcpschema.ToolOutputSchema
	handler      func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error)
}

// NewHandler returns an MCP handler factory registering one tool per method
// of the generator action service. Every connection shares the same
// generator.
func NewHandler(svc *gen.Service) func(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	actions := action.New(svc)
	return func(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
		entries, err := serviceEntries(actions)
		if err != nil {
			return nil, err
		}
		impl := serverproto.NewDefaultHandler(notifier, l, cli)
		for _, e := range entries {
			impl.RegisterToolWithSchema(e.name, e.description, e.inputSchema, e.outputSchema, e.handler)
		}
		return impl, nil
	}
}

// serviceEntries converts the methods of a Fluxor service into tool entries.
func serviceEntries(svc types.Service) ([]entry, error) {
	entries := make([]entry, 0, len(svc.Methods()))
	for _, sig := range svc.Methods() {
		sigCopy := sig
		input, output, err := buildSchema(&sigCopy)
		if err != nil {
			return nil, err
		}
		exec, err := svc.Method(sig.Name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{
			name:         NewName(svc.Name(), sig.Name).String(),
			description:  sig.Description,
			inputSchema:  input,
			outputSchema: output,
			handler:      handler(&sigCopy, exec),
		})
	}
	return entries, nil
}

// buildSchema derives the tool input and output JSON schema from the action
// signature.
func buildSchema(sig *types.Signature) (mcpschema.ToolInputSchema, *mcpschema.ToolOutputSchema, error) {
	var inputSchema mcpschema.ToolInputSchema
	if err := inputSchema.Load(newValue(sig.Input)); err != nil {
		return inputSchema, nil, fmt.Errorf("failed to build input schema for %s: %w", sig.Name, err)
	}
	if inputSchema.Type == "" {
		inputSchema.Type = "object"
	}
	outputType := sig.Output
	if outputType.Kind() == reflect.Pointer {
		outputType = outputType.Elem()
	}
	props, required := mcpschema.StructToProperties(outputType)
	return inputSchema, &mcpschema.ToolOutputSchema{Type: "object", Properties: props, Required: required}, nil
}

// handler adapts an action executable to an MCP tool call. Execution
// failures are reported as error results carrying the diagnostic text.
func handler(sig *types.Signature, exec types.Executable) func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	return func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		input := newValue(sig.Input)
		if len(request.Params.Arguments) > 0 {
			if err := conv.Convert(request.Params.Arguments, input); err != nil {
				return errorResult(err), nil
			}
		}
		output := newValue(sig.Output)
		if err := exec(ctx, input, output); err != nil {
			return errorResult(err), nil
		}
		return &mcpschema.CallToolResult{Content: []mcpschema.CallToolResultContentElem{{
			Type: "text",
			Text: textOf(output),
		}}}, nil
	}
}

// newValue returns a pointer to a new zero value of t (or of its element
// when t is a pointer).
func newValue(t reflect.Type) interface{} {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Interface()
}

// textOf renders a tool result: values with a textual form (the generated
// source) are returned as is, anything else as JSON.
func textOf(output interface{}) string {
	switch actual := output.(type) {
	case fmt.Stringer:
		return actual.String()
	case *string:
		return *actual
	}
	data, _ := json.Marshal(output)
	return string(data)
}

func errorResult(err error) *mcpschema.CallToolResult {
	return &mcpschema.CallToolResult{
		IsError: conv.Pointer[bool](true),
		Content: []mcpschema.CallToolResultContentElem{{
			Type: "text",
			Text: err.Error(),
		}},
	}
}
