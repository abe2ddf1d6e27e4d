// Package main is the entry point for coauthor.
package main

import (
	"os"

	"github.com/Dicklesworthstone/coauthor/cmd/coauthor/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
