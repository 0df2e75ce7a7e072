package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/viant/firestore-gen/internal/log"
)

var (
	// stdout receives generated source and command output; diagnostics go
	// to the logger (stderr).
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Run is the entry point for the CLI. Any failure is logged and terminates
// the process with a non-zero exit code.
func Run(args []string) {
	if err := RunE(args); err != nil {
		logger := log.WithComponent("cli")
		logger.Fatal().Err(err).Msg("firestore-gen failed")
	}
}

// RunE parses args and executes the selected command. Without a command the
// generate command runs with its defaults.
func RunE(args []string) error {
	opts := &Options{}
	opts.Init(firstCommand(args))

	executed := false
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		executed = true
		prepare(opts)
		if command == nil {
			return (&GenerateCmd{}).Execute(args)
		}
		return command.Execute(args)
	}
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stderr, flagsErr.Message)
			return nil
		}
		return err
	}
	if !executed && parser.Active == nil {
		prepare(opts)
		return (&GenerateCmd{}).Execute(nil)
	}
	return nil
}

// prepare applies the parsed global options before any command builds the
// shared services.
func prepare(opts *Options) {
	log.Configure(log.Config{Level: opts.LogLevel, Format: opts.LogFormat})
	setConfigPath(opts.Config)
}

// firstCommand returns the first argument that is not an option or the value
// of a global option.
func firstCommand(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return ""
		case a == "-f", a == "--config", a == "--log-level", a == "--log-format":
			i++
		case strings.HasPrefix(a, "-"):
		default:
			return a
		}
	}
	return ""
}
