// Package main is the entry point for the ruffyt CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The ruffyt tool bundles a small web
// service with a helper that keeps the project's pinned dependency
// versions up to date.
package main

import "github.com/ruffyt/ruffyt/cmd"

// main initializes and runs the ruffyt CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which handles subcommands like update-packages and serve.
func main() {
	cmd.Execute()
}
