package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/twitchkit/twitchkit/icon"
	"github.com/twitchkit/twitchkit/language"
)

func completionLanguages(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return append([]string{language.All}, language.Codes...), cobra.ShellCompDirectiveNoFileComp
}

func printLanguages(codes []string) {
	success("languages: %s", strings.Join(lo.Map(codes, func(c string, _ int) string {
		return value(c)
	}), ", "))
}

func init() {
	rootCmd.AddCommand(languageCmd)
}

var languageCmd = &cobra.Command{
	Use:     "language",
	Short:   "Manage the broadcast language filter",
	Aliases: []string{"lang"},
}

func init() {
	languageCmd.AddCommand(languageListCmd)
}

var languageListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the language filter",
	Run: func(cmd *cobra.Command, args []string) {
		codes, err := store().Languages()
		handleErr(err)

		for _, code := range codes {
			cmd.Printf("%s %s\n", icon.Get(icon.Language), code)
		}
	},
}

func init() {
	languageCmd.AddCommand(languageAddCmd)
}

var languageAddCmd = &cobra.Command{
	Use:               "add <code>",
	Short:             "Add a language to the filter, or reset it with " + language.All,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionLanguages,
	Run: func(cmd *cobra.Command, args []string) {
		codes, err := store().AddLanguage(args[0])
		handleErr(err)
		printLanguages(codes)
	},
}

func init() {
	languageCmd.AddCommand(languageRemoveCmd)
}

var languageRemoveCmd = &cobra.Command{
	Use:               "remove <code>",
	Short:             "Remove a language from the filter",
	Aliases:           []string{"rm"},
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionLanguages,
	Run: func(cmd *cobra.Command, args []string) {
		codes, err := store().RemoveLanguage(args[0])
		handleErr(err)
		printLanguages(codes)
	},
}
