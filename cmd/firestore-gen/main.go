package main

import (
	"os"

	"github.com/viant/firestore-gen/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
