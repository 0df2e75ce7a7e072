package cmd

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/firestore-gen/gen/action"
)

// ActionCmd shows detailed information about one Fluxor action method.
type ActionCmd struct {
	Name string `short:"n" long:"name" description:"identifier in form service/method" positional-arg-name:"name"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ActionCmd) Execute(_ []string) error {
	name := c.Name
	if name == "" {
		name = action.Name + "/" + action.MethodGenerate
	}
	idx := strings.LastIndex(name, "/")
	if idx <= 0 || idx == len(name)-1 {
		return fmt.Errorf("name must be service/method")
	}
	svcName, method := name[:idx], name[idx+1:]

	engine, err := engineSingleton()
	if err != nil {
		return err
	}

	s := engine.Service.Actions().Lookup(svcName)
	if s == nil {
		return fmt.Errorf("service %q not found", svcName)
	}
	sig := s.Methods().Lookup(method)
	if sig == nil {
		return fmt.Errorf("method %q not found in service %q", method, svcName)
	}

	info := struct {
		Service     string `json:"service"`
		Method      string `json:"method"`
		Description string `json:"description"`
		InputType   string `json:"inputType"`
		OutputType  string `json:"outputType"`
		InputDef    string `json:"inputDefinition,omitempty"`
		OutputDef   string `json:"outputDefinition,omitempty"`
	}{
		Service:     svcName,
		Method:      method,
		Description: sig.Description,
		InputType:   typeString(sig.Input),
		OutputType:  typeString(sig.Output),
		InputDef:    typeDefinition(sig.Input),
		OutputDef:   typeDefinition(sig.Output),
	}

	if c.JSON {
		data, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	fmt.Fprintf(stdout, "Service : %s\n", info.Service)
	fmt.Fprintf(stdout, "Method  : %s\n", info.Method)
	fmt.Fprintf(stdout, "Desc    : %s\n", info.Description)
	fmt.Fprintf(stdout, "Input   : %s\n", info.InputType)
	fmt.Fprintf(stdout, "Output  : %s\n", info.OutputType)
	if info.InputDef != "" {
		fmt.Fprintf(stdout, "\nInput Definition:\n%s\n", info.InputDef)
	}
	if info.OutputDef != "" {
		fmt.Fprintf(stdout, "\nOutput Definition:\n%s\n", info.OutputDef)
	}
	return nil
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<none>"
	}
	if t.Kind() == reflect.Pointer {
		return "*" + t.Elem().String()
	}
	return t.String()
}

// typeDefinition returns a Go-like struct definition listing the fields of a
// struct type, or an empty string for other kinds.
func typeDefinition(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Pointer {
		return typeDefinition(t.Elem())
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	var b strings.Builder
	b.WriteString("struct {\n")
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		b.WriteString("    ")
		b.WriteString(f.Name)
		b.WriteString(" ")
		b.WriteString(simpleTypeExpr(f.Type))
		if tag := strings.TrimSpace(string(f.Tag)); tag != "" {
			b.WriteString(" `")
			b.WriteString(tag)
			b.WriteString("`")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

func simpleTypeExpr(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return "*" + simpleTypeExpr(t.Elem())
	}
	if t.Name() != "" {
		return t.String()
	}
	switch t.Kind() {
	case reflect.Slice:
		return "[]" + simpleTypeExpr(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), simpleTypeExpr(t.Elem()))
	case reflect.Map:
		return fmt.Sprintf("map[%s]%s", simpleTypeExpr(t.Key()), simpleTypeExpr(t.Elem()))
	case reflect.Struct:
		return "struct{…}"
	default:
		return t.String()
	}
}
