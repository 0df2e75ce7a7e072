package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/viant/firestore-gen/internal/log"
)

// RunCmd runs a Fluxor build workflow in which the generator is available as
// the firestore/config action.
type RunCmd struct {
	Location   string `short:"l" long:"location" description:"Workflow definition path (YAML)" required:"yes"`
	InputFile  string `short:"i" long:"input"    description:"JSON file with initial state"`
	State      string `short:"s" long:"state"    description:"JSON Object with initial state"`
	TimeoutSec int    `long:"timeout" description:"Seconds to wait for completion" default:"30"`
}

func (c *RunCmd) Execute(_ []string) error {
	if c.Location == "" {
		return fmt.Errorf("workflow location must be provided via -l/--location")
	}
	initState, err := c.initialState()
	if err != nil {
		return err
	}

	engine, err := engineSingleton()
	if err != nil {
		return err
	}

	timeout := time.Duration(c.TimeoutSec) * time.Second
	processID, output, err := engine.Run(context.Background(), c.Location, initState, timeout)
	if err != nil {
		return err
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	fmt.Fprintln(stdout, string(data))
	logger := log.WithComponent("run")
	logger.Info().Str("process", processID).Str("workflow", c.Location).Msg("process completed")
	return nil
}

func (c *RunCmd) initialState() (map[string]interface{}, error) {
	initState := make(map[string]interface{})
	var data []byte
	switch {
	case c.State != "":
		data = []byte(strings.TrimSpace(c.State))
	case c.InputFile != "":
		f, err := os.Open(c.InputFile)
		if err != nil {
			return nil, fmt.Errorf("open input file: %w", err)
		}
		defer f.Close()
		if data, err = io.ReadAll(f); err != nil {
			return nil, fmt.Errorf("read input file: %w", err)
		}
	}
	if len(data) == 0 {
		return initState, nil
	}
	if err := json.Unmarshal(data, &initState); err != nil {
		return nil, fmt.Errorf("decode initial state: %w", err)
	}
	return initState, nil
}
