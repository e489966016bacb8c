package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/docline/docline/internal"
	"github.com/docline/docline/usage"
)

var checkCmd = &cobra.Command{
	Use:   "check <docfile>",
	Short: "Compile a help text and print its pattern tree",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			logger.Fatal("Failed to read help text", zap.String("path", args[0]), zap.Error(err))
		}

		spec, err := usage.Parse(string(raw))
		if err != nil {
			logger.Fatal("Grammar error", zap.String("path", args[0]), zap.Error(err))
		}

		fmt.Printf("program: %s\n", spec.Name)
		fmt.Printf("options: %d declared\n\n", len(spec.Options))
		fmt.Print(internal.FormatTree(spec.Pattern))
	},
}
