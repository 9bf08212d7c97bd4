// SPDX-License-Identifier: MIT

// Command waypath plans shortest paths and round trips over a small weighted
// graph and draws the result in the terminal or as Graphviz DOT.
//
// Usage:
//
//	waypath path A D
//	waypath tour A B C
//	waypath inspect A
//	waypath render A D --format dot | dot -Tsvg > route.svg
//
// Without --graph the built-in sample graph is used.
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		printError(stderr, err)
		return 1
	}

	return 0
}
