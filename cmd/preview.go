package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/twitchkit/twitchkit/preview"
	"github.com/twitchkit/twitchkit/style"
	"github.com/twitchkit/twitchkit/where"
)

// patternCleaner prints the texture cache pattern for the media center to purge.
type patternCleaner struct {
	cmd *cobra.Command
}

func (c patternCleaner) RemoveLike(pattern string, notify bool) error {
	c.cmd.Println(pattern)
	if notify {
		success("live previews refreshed")
	}
	return nil
}

func refresher(cmd *cobra.Command) *preview.Refresher {
	return preview.NewRefresher(settings(), patternCleaner{cmd: cmd}, where.PreviewStamp())
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show when live previews were last refreshed",
	Run: func(cmd *cobra.Command, args []string) {
		r := refresher(cmd)

		interval, err := r.Interval()
		handleErr(err)
		since, ok, err := r.Since()
		handleErr(err)
		due, err := r.Due()
		handleErr(err)

		last := "never"
		if ok {
			last = fmt.Sprintf("%s ago", since.Round(time.Second))
		}

		cmd.Printf("%s %s\n", style.Faint("interval"), value(interval.String()))
		cmd.Printf("%s %s\n", style.Faint("last    "), value(last))
		cmd.Printf("%s %t\n", style.Faint("due     "), due)
	},
}

func init() {
	previewCmd.AddCommand(previewRefreshCmd)
}

var previewRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh live previews when the interval has passed",
	Run: func(cmd *cobra.Command, args []string) {
		refreshed, err := refresher(cmd).Refresh()
		handleErr(err)

		if !refreshed {
			cmd.Println(style.Empty("not due"))
		}
	},
}
