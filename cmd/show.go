package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ShowCmd prints the values that would be embedded in the generated source.
type ShowCmd struct {
	Input  string `short:"i" long:"input" description:"google-services.json path or URL"`
	JSON   bool   `long:"json" description:"print result as JSON"`
	Reveal bool   `long:"reveal" description:"print the API key unmasked"`
}

func (c *ShowCmd) Execute(_ []string) error {
	svc, err := generatorSingleton()
	if err != nil {
		return err
	}
	input := c.Input
	if input == "" {
		input = svc.Config().Input
	}
	project, err := svc.Load(context.Background(), input)
	if err != nil {
		return err
	}
	info := *project
	if !c.Reveal {
		info.APIKey = mask(info.APIKey)
	}

	if c.JSON {
		data, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	fmt.Fprintf(stdout, "Input         : %s\n", input)
	fmt.Fprintf(stdout, "ApplicationID : %s\n", info.ApplicationID)
	fmt.Fprintf(stdout, "ProjectID     : %s\n", info.ProjectID)
	fmt.Fprintf(stdout, "APIKey        : %s\n", info.APIKey)
	fmt.Fprintf(stdout, "DatabaseURL   : %s\n", info.DatabaseURL)
	fmt.Fprintf(stdout, "StorageBucket : %s\n", info.StorageBucket)
	return nil
}

// mask keeps the first four characters of a key.
func mask(key string) string {
	const visible = 4
	if len(key) <= visible {
		return strings.Repeat("*", len(key))
	}
	return key[:visible] + strings.Repeat("*", len(key)-visible)
}
