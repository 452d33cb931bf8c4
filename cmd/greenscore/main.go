// Package main is the entry point for the greenscore CLI and server.
package main

import (
	"github.com/greenverse/greenscore/cmd/greenscore/cmd"
)

func main() {
	cmd.Execute()
}
