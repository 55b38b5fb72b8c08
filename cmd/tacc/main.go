// Command tacc compiles the three-address-code front-end's single
// supported source language and writes the generated listing.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/tacc/cmd/tacc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
