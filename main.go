// ./main.go
package main

import (
	"github.com/driftline/rbcore/cmd"
)

// main is the entry point for the rbcore tool.
func main() {
	// Execute the root command defined in the cmd package.
	// This handles all command-line parsing, configuration, and execution.
	cmd.Execute()
}
