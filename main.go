// main is the entry point for the impact CLI.
package main

import (
	"os"

	"github.com/nicknexus/impact/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
