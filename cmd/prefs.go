package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"github.com/twitchkit/twitchkit/prefs"
)

func init() {
	rootCmd.AddCommand(prefsCmd)
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect the preferences document",
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the preferences document, filling in missing sections",
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := store().Document()
		handleErr(err)

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(doc))
	},
}

func init() {
	prefsCmd.AddCommand(prefsSchemaCmd)
}

var prefsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the preferences document",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(os.Stdout).Encode(prefs.Schema()))
	},
}
