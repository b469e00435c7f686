package cmd

import (
	"net/url"

	"github.com/spf13/cobra"
	"github.com/twitchkit/twitchkit/pagination"
	"github.com/twitchkit/twitchkit/style"
)

func init() {
	rootCmd.AddCommand(pageCmd)
}

var pageCmd = &cobra.Command{
	Use:   "page <index>",
	Short: "Print the offset and limit of a listing page",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		page, err := pagination.CalculateString(args[0], settings())
		handleErr(err)

		cmd.Printf("%s %d\n", style.Faint("index "), page.Index)
		cmd.Printf("%s %d\n", style.Faint("offset"), page.Offset)
		cmd.Printf("%s %d\n", style.Faint("limit "), page.Limit)
	},
}

func init() {
	pageCmd.AddCommand(pageNextCmd)
}

var pageNextCmd = &cobra.Command{
	Use:   "next <url>",
	Short: "Print a plugin URL pointing at the following page",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u, err := url.Parse(args[0])
		handleErr(err)

		query, err := pagination.NextPage(u.Query())
		handleErr(err)

		u.RawQuery = query.Encode()
		cmd.Println(u.String())
	},
}
