// Package main provides arrfill, a walkthrough of array fill and generate
// operations.
package main

import (
	"os"
	"strings"

	"github.com/calvinalkan/arrfill/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	exitCode := cli.Run(os.Stdout, os.Stderr, os.Args, env)

	os.Exit(exitCode)
}
