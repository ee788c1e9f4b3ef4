// Package main is the entry point for the Conduit CLI application.
// It provides a terminal client for a Conduit (RealWorld) blogging backend.
package main

import (
	"conduit/cli/cmd"
)

func main() {
	cmd.Execute()
}
