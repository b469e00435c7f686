package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/twitchkit/twitchkit/prefs"
	"github.com/twitchkit/twitchkit/style"
	"golang.org/x/exp/slices"
)

var sortFields = []prefs.SortField{prefs.SortBy, prefs.SortDirection, prefs.SortPeriod}

func completionSortContexts(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return lo.Keys(prefs.DefaultSorting()), cobra.ShellCompDirectiveNoFileComp
}

func renderSort(sort prefs.Sort) string {
	return lo.Reduce(sortFields, func(acc string, f prefs.SortField, _ int) string {
		v := "-"
		if field := sort.Field(f); field != nil {
			v = value(*field)
		}
		return acc + fmt.Sprintf("  %s %s", style.Faint(string(f)), v)
	}, "")
}

func init() {
	rootCmd.AddCommand(sortCmd)
}

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Manage remembered sorting of listings",
}

func init() {
	sortCmd.AddCommand(sortListCmd)
}

var sortListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the sorting of every context",
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := store().Document()
		handleErr(err)

		contexts := lo.Keys(doc.Sorting)
		slices.Sort(contexts)

		printRows(cmd, lo.Map(contexts, func(context string, _ int) string {
			return highlight(context) + renderSort(doc.Sorting[context])
		}), "no sorting remembered")
	},
}

func init() {
	sortCmd.AddCommand(sortGetCmd)
	sortGetCmd.Flags().StringP("field", "f", "", "Only print this field (by, direction or period)")
	lo.Must0(sortGetCmd.RegisterFlagCompletionFunc("field", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(sortFields, func(f prefs.SortField, _ int) string { return string(f) }), cobra.ShellCompDirectiveNoFileComp
	}))
}

var sortGetCmd = &cobra.Command{
	Use:               "get <context>",
	Short:             "Print the sorting of a context",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionSortContexts,
	Run: func(cmd *cobra.Command, args []string) {
		if field := lo.Must(cmd.Flags().GetString("field")); field != "" {
			v, err := store().SortField(args[0], prefs.SortField(field))
			handleErr(err)
			cmd.Println(v.OrEmpty())
			return
		}

		sort, err := store().Sort(args[0])
		handleErr(err)

		if s, ok := sort.Get(); ok {
			cmd.Println(highlight(args[0]) + renderSort(s))
		}
	},
}

func init() {
	sortCmd.AddCommand(sortSetCmd)
	sortSetCmd.Flags().String("by", "", "Field to sort by")
	sortSetCmd.Flags().String("direction", "", "Sort direction")
	sortSetCmd.Flags().String("period", "", "Time period")
}

var sortSetCmd = &cobra.Command{
	Use:               "set <context>",
	Short:             "Set the sorting of a context",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionSortContexts,
	Run: func(cmd *cobra.Command, args []string) {
		flag := func(name string) *string {
			if !cmd.Flags().Changed(name) {
				return nil
			}
			v := lo.Must(cmd.Flags().GetString(name))
			return &v
		}

		sort := prefs.Sort{By: flag("by"), Direction: flag("direction"), Period: flag("period")}
		set, err := store().SetSort(args[0], sort)
		handleErr(err)

		if !set {
			handleErr(fmt.Errorf("unknown sorting context %s", args[0]))
		}
		success("set sorting of %s to%s", highlight(args[0]), renderSort(sort))
	},
}

func init() {
	sortCmd.AddCommand(sortClearCmd)
}

var sortClearCmd = &cobra.Command{
	Use:               "clear <context>",
	Short:             "Forget the sorting of a context",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionSortContexts,
	Run: func(cmd *cobra.Command, args []string) {
		clearList(prefs.SortingKey, args[0])
	},
}
