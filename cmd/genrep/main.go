// genrep prints the generator representation of a parallelotope given as
// half-spaces in a YAML or JSON file.
package main

import (
	"os"
)

var (
	Version = "dev"
	Commit  = "none"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
