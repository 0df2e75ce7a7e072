package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config    string `short:"f" long:"config" description:"generator configuration YAML/JSON path"`
	LogLevel  string `long:"log-level" description:"diagnostic log level (debug, info, warn, error)"`
	LogFormat string `long:"log-format" description:"diagnostic log format" choice:"console" choice:"json"`

	Generate    *GenerateCmd    `command:"generate"     description:"Generate the FirestoreConfig Java source (default command)"`
	Show        *ShowCmd        `command:"show"         description:"Print the credentials extracted from google-services.json"`
	Serve       *ServeCmd       `command:"serve"        description:"Start MCP server exposing the generator tool"`
	Run         *RunCmd         `command:"run"          description:"Run a build workflow with the generator action registered"`
	ListActions *ListActionsCmd `command:"list-actions" description:"List Fluxor services and their actions"`
	Action      *ActionCmd      `command:"action"       description:"Show detailed info about one Fluxor action"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "generate":
		o.Generate = &GenerateCmd{}
	case "show":
		o.Show = &ShowCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	case "run":
		o.Run = &RunCmd{}
	case "list-actions":
		o.ListActions = &ListActionsCmd{}
	case "action":
		o.Action = &ActionCmd{}
	}
}
