// Package main is the entry point for the framecheck CLI.
package main

import "framecheck.dev/pkg/framecheck/cmd"

func main() {
	cmd.Execute()
}
