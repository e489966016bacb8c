package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "docline",
	Short: "docline - bind command-line arguments against a help text",
	Long: `docline compiles a program's help text into a usage grammar and
matches argument vectors against it. Use "check" to inspect a grammar and
"bind" to run arguments through it.`,
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(bindCmd)
}
