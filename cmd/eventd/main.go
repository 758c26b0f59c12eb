package main

import (
	"fmt"
	"os"
)

func main() {
	root := buildRootCmd(defaultCLIConfig(), os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "eventd:", err)
		os.Exit(1)
	}
}
