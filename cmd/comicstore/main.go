package main

import (
	"fmt"
	"os"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
