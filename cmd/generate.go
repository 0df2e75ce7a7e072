package cmd

import (
	"context"

	"github.com/viant/firestore-gen/gen"
)

// GenerateCmd renders the FirestoreConfig Java source. Flags override the
// configuration file; with neither, ./android/google-services.json is read
// and the source is written to stdout.
type GenerateCmd struct {
	Input     string `short:"i" long:"input"   description:"google-services.json path or URL"`
	Output    string `short:"o" long:"output"  description:"destination path or URL (stdout when empty)"`
	Package   string `short:"p" long:"package" description:"java package of the generated class"`
	ClassName string `short:"c" long:"class"   description:"name of the generated class"`
}

func (c *GenerateCmd) Execute(_ []string) error {
	svc, err := generatorSingleton()
	if err != nil {
		return err
	}
	_, err = svc.Run(context.Background(), &gen.Request{
		Input:       c.Input,
		Output:      c.Output,
		JavaPackage: c.Package,
		ClassName:   c.ClassName,
	}, stdout)
	return err
}
