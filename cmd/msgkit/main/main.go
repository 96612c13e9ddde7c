package main

import (
	"os"

	"github.com/arthur-debert/msgkit/cmd/msgkit"
)

func main() {
	os.Exit(msgkit.Execute(os.Args[1:]))
}
