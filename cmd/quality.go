package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/twitchkit/twitchkit/color"
	"github.com/twitchkit/twitchkit/icon"
	"github.com/twitchkit/twitchkit/prefs"
	"github.com/twitchkit/twitchkit/style"
	"github.com/twitchkit/twitchkit/util"
)

var contentTypes = []string{string(prefs.Stream), string(prefs.Video), string(prefs.Clip)}

func completionContentTypes(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return contentTypes, cobra.ShellCompDirectiveNoFileComp
}

func contentType(arg string) prefs.ContentType {
	if !lo.Contains(contentTypes, arg) {
		handleErr(fmt.Errorf("unknown content type %s, expected one of %v", style.Fg(color.Red)(arg), contentTypes))
	}
	return prefs.ContentType(arg)
}

func init() {
	rootCmd.AddCommand(qualityCmd)
}

var qualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Manage default qualities of channels, videos and clips",
}

func init() {
	qualityCmd.AddCommand(qualityListCmd)
}

var qualityListCmd = &cobra.Command{
	Use:               "list <content>",
	Short:             "List the default qualities of a content type",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionContentTypes,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := store().DefaultQualities(contentType(args[0]))
		handleErr(err)

		cmd.Println(style.Title(util.Capitalize(args[0])+" qualities") + " " + style.Faint(util.Quantify(len(entries), "entry", "entries")))
		printRows(cmd, lo.Map(entries, func(e prefs.QualityEntry, _ int) string {
			return fmt.Sprintf("%s %s %s %s", icon.Get(icon.Quality), highlight(e.Name), value(e.Quality), style.Faint(e.TargetID))
		}), "no default qualities")
	},
}

func init() {
	qualityCmd.AddCommand(qualityGetCmd)
}

var qualityGetCmd = &cobra.Command{
	Use:               "get <content> <id>",
	Short:             "Print the default quality of an id",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionContentTypes,
	Run: func(cmd *cobra.Command, args []string) {
		entry, err := store().DefaultQuality(contentType(args[0]), args[1])
		handleErr(err)

		if e, ok := entry.Get(); ok {
			cmd.Println(e.Quality)
		}
	},
}

func init() {
	qualityCmd.AddCommand(qualitySetCmd)
}

var qualitySetCmd = &cobra.Command{
	Use:               "set <content> <id> <name> <quality>",
	Short:             "Remember the quality of an id",
	Args:              cobra.ExactArgs(4),
	ValidArgsFunction: completionContentTypes,
	Run: func(cmd *cobra.Command, args []string) {
		changed, err := store().AddDefaultQuality(contentType(args[0]), args[1], args[2], args[3])
		handleErr(err)

		if !changed {
			cmd.Printf("%s %s already defaults to %s\n", icon.Get(icon.Quality), highlight(args[2]), value(args[3]))
			return
		}
		success("%s now defaults to %s", highlight(args[2]), value(args[3]))
	},
}

func init() {
	qualityCmd.AddCommand(qualityRemoveCmd)
}

var qualityRemoveCmd = &cobra.Command{
	Use:               "remove <content>",
	Short:             "Pick a default quality to remove",
	Aliases:           []string{"rm"},
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionContentTypes,
	Run: func(cmd *cobra.Command, args []string) {
		removed, err := store().RemoveDefaultQuality(contentType(args[0]))
		handleErr(err)

		if entry, ok := removed.Get(); ok {
			success("removed default quality %s", highlight(entry.String()))
		}
	},
}

func init() {
	qualityCmd.AddCommand(qualityClearCmd)
}

var qualityClearCmd = &cobra.Command{
	Use:               "clear <content>",
	Short:             "Remove every default quality of a content type",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionContentTypes,
	Run: func(cmd *cobra.Command, args []string) {
		clearList(prefs.QualitiesKey, string(contentType(args[0])))
	},
}
