package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/docline/docline"
	"github.com/docline/docline/internal"
	"github.com/docline/docline/pattern"
)

var (
	bindJSON bool
	bindYAML bool
)

var bindCmd = &cobra.Command{
	Use:   "bind <docfile> [-- args...]",
	Short: "Bind an argument vector against a help text",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			logger.Fatal("Failed to read help text", zap.String("path", args[0]), zap.Error(err))
		}

		opts, err := docline.Parse(string(raw), args[1:])
		if err != nil {
			var helpErr *docline.HelpError
			if errors.As(err, &helpErr) {
				fmt.Println(helpErr.Text)
				return
			}
			var usageErr *docline.UsageError
			if errors.As(err, &usageErr) {
				fmt.Fprintln(os.Stderr, usageErr.Error())
				os.Exit(1)
			}
			logger.Fatal("Grammar error", zap.String("path", args[0]), zap.Error(err))
		}

		printBindings(opts, bindJSON, bindYAML)
	},
}

func init() {
	bindCmd.Flags().BoolVar(&bindJSON, "json", false, "Output bindings as JSON")
	bindCmd.Flags().BoolVar(&bindYAML, "yaml", false, "Output bindings as YAML")
}

func printBindings(opts docline.Opts, asJSON, asYAML bool) {
	switch {
	case asJSON:
		d, err := json.MarshalIndent(opts, "", "  ")
		if err != nil {
			logger.Error("Error marshalling bindings to JSON", zap.Error(err))
			return
		}
		fmt.Println(string(d))
	case asYAML:
		d, err := yaml.Marshal(opts)
		if err != nil {
			logger.Error("Error marshalling bindings to YAML", zap.Error(err))
			return
		}
		fmt.Print(string(d))
	default:
		fmt.Print(internal.FormatBindings(map[string]pattern.Value(opts)))
	}
}
