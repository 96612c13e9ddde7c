package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/msgkit/cmd/msgkit"
)

func main() {
	rootCmd := msgkit.NewRootCmd()

	if err := doc.GenMan(rootCmd, msgkit.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
