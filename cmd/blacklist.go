package cmd

import (
	"fmt"

	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/twitchkit/twitchkit/color"
	"github.com/twitchkit/twitchkit/icon"
	"github.com/twitchkit/twitchkit/prefs"
	"github.com/twitchkit/twitchkit/style"
	"github.com/twitchkit/twitchkit/util"
)

var blacklistCategories = []string{string(prefs.User), string(prefs.Game), string(prefs.Community)}

func completionBlacklistCategories(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return blacklistCategories, cobra.ShellCompDirectiveNoFileComp
}

func blacklistCategory(arg string) prefs.BlacklistCategory {
	if !lo.Contains(blacklistCategories, arg) {
		handleErr(fmt.Errorf("unknown blacklist category %s, expected one of %v", style.Fg(color.Red)(arg), blacklistCategories))
	}
	return prefs.BlacklistCategory(arg)
}

// printRows prints one row per entry, truncated to the terminal width.
func printRows(cmd *cobra.Command, rows []string, empty string) {
	if len(rows) == 0 {
		cmd.Println(style.Empty(empty))
		return
	}

	width := uint(util.Max(util.TerminalWidth(80)-2, 20))
	for _, row := range rows {
		cmd.Println(truncate.StringWithTail(row, width, "…"))
	}
}

func init() {
	rootCmd.AddCommand(blacklistCmd)
}

var blacklistCmd = &cobra.Command{
	Use:     "blacklist",
	Short:   "Manage blacklisted users, games and communities",
	Aliases: []string{"bl"},
}

func init() {
	blacklistCmd.AddCommand(blacklistListCmd)
}

var blacklistListCmd = &cobra.Command{
	Use:               "list <category>",
	Short:             "List the blacklist of a category",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionBlacklistCategories,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := store().Blacklist(blacklistCategory(args[0]))
		handleErr(err)

		cmd.Println(style.Title(util.Capitalize(args[0])+" blacklist") + " " + style.Faint(util.Quantify(len(entries), "entry", "entries")))
		printRows(cmd, lo.Map(entries, func(e prefs.BlacklistEntry, _ int) string {
			return fmt.Sprintf("%s %s %s", icon.Get(icon.Blocked), highlight(e.Name), style.Faint(e.ID))
		}), "nothing blacklisted")
	},
}

func init() {
	blacklistCmd.AddCommand(blacklistAddCmd)
}

var blacklistAddCmd = &cobra.Command{
	Use:               "add <category> <id> <name>",
	Short:             "Blacklist an entry",
	Args:              cobra.ExactArgs(3),
	ValidArgsFunction: completionBlacklistCategories,
	Run: func(cmd *cobra.Command, args []string) {
		category := blacklistCategory(args[0])

		added, err := store().AddBlacklist(args[1], args[2], category)
		handleErr(err)

		if !added {
			cmd.Printf("%s %s is already blacklisted\n", icon.Get(icon.Blocked), highlight(args[2]))
			return
		}
		success("blacklisted %s %s", category, highlight(args[2]))
	},
}

func init() {
	blacklistCmd.AddCommand(blacklistCheckCmd)
}

var blacklistCheckCmd = &cobra.Command{
	Use:               "check <category> <id>",
	Short:             "Check whether an id is blacklisted",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionBlacklistCategories,
	Run: func(cmd *cobra.Command, args []string) {
		blacklisted, err := store().IsBlacklisted(args[1], blacklistCategory(args[0]))
		handleErr(err)

		cmd.Println(blacklisted)
	},
}

func init() {
	blacklistCmd.AddCommand(blacklistRemoveCmd)
}

var blacklistRemoveCmd = &cobra.Command{
	Use:               "remove <category>",
	Short:             "Pick a blacklisted entry to remove",
	Aliases:           []string{"rm"},
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionBlacklistCategories,
	Run: func(cmd *cobra.Command, args []string) {
		removed, err := store().RemoveBlacklist(blacklistCategory(args[0]))
		handleErr(err)

		if entry, ok := removed.Get(); ok {
			success("removed %s from the %s blacklist", highlight(entry.Name), args[0])
		}
	},
}

func init() {
	blacklistCmd.AddCommand(blacklistClearCmd)
}

var blacklistClearCmd = &cobra.Command{
	Use:               "clear <category>",
	Short:             "Remove every entry of a category",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionBlacklistCategories,
	Run: func(cmd *cobra.Command, args []string) {
		clearList(prefs.BlacklistKey, string(blacklistCategory(args[0])))
	},
}

func clearList(listName, listType string) {
	confirmed, err := dialogConfirm(fmt.Sprintf("Clear %s %s?", listType, listName))
	handleErr(err)
	if !confirmed {
		return
	}

	cleared, err := store().ClearList(listName, listType)
	handleErr(err)

	if !cleared {
		handleErr(fmt.Errorf("nothing to clear in %s %s", listType, listName))
	}
	success("cleared %s %s", listType, listName)
}
