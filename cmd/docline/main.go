package main

import (
	"os"

	"github.com/docline/docline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
