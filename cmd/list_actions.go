package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/viant/firestore-gen/gen/action"
	"github.com/viant/firestore-gen/gen/tool"
)

// ListActionsCmd prints the Fluxor actions a build workflow can call. The
// generator service is listed first together with the MCP tool name each of
// its methods is served under.
type ListActionsCmd struct {
	JSON bool `long:"json" description:"print result as JSON"`
}

type actionEntry struct {
	Service     string `json:"service"`
	Method      string `json:"method"`
	Description string `json:"description,omitempty"`
	Tool        string `json:"tool,omitempty"`
}

func (c *ListActionsCmd) Execute(_ []string) error {
	engine, err := engineSingleton()
	if err != nil {
		return err
	}

	actions := engine.Service.Actions()
	names := actions.Services()
	sort.Slice(names, func(i, j int) bool {
		if (names[i] == action.Name) != (names[j] == action.Name) {
			return names[i] == action.Name
		}
		return names[i] < names[j]
	})

	var entries []actionEntry
	for _, name := range names {
		svc := actions.Lookup(name)
		if svc == nil {
			continue
		}
		sigs := svc.Methods()
		sort.Slice(sigs, func(i, j int) bool { return sigs[i].Name < sigs[j].Name })
		for _, sig := range sigs {
			entry := actionEntry{Service: name, Method: sig.Name, Description: sig.Description}
			if name == action.Name {
				entry.Tool = tool.NewName(name, sig.Name).String()
			}
			entries = append(entries, entry)
		}
	}

	if c.JSON {
		data, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	service := ""
	for _, entry := range entries {
		if entry.Service != service {
			service = entry.Service
			if service == action.Name {
				fmt.Fprintf(stdout, "%s (generator)\n", service)
			} else {
				fmt.Fprintln(stdout, service)
			}
		}
		if entry.Tool != "" {
			fmt.Fprintf(stdout, "  %s\t[tool %s]\t%s\n", entry.Method, entry.Tool, entry.Description)
			continue
		}
		fmt.Fprintf(stdout, "  %s\t%s\n", entry.Method, entry.Description)
	}
	return nil
}
