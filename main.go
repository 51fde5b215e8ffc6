// Package main is the entry point for the bitrot CLI.
package main

import "bitrot.dev/pkg/bitrot/cmd"

func main() {
	cmd.Execute()
}
