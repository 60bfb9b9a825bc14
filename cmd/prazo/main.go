package main

import (
	"fmt"
	"os"

	"github.com/juristech/prazo/internal/interfaces/cli"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

//Personal.AI order the ending
