package main

import (
	"fmt"
	"os"

	agentagecmd "github.com/agentage/agentage/pkg/agentage/cmd"
)

func main() {
	root := agentagecmd.NewRootCommand(agentagecmd.DefaultConfig())
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
