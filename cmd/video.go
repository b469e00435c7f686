package cmd

import (
	"github.com/spf13/cobra"
	"github.com/twitchkit/twitchkit/video"
)

func init() {
	rootCmd.AddCommand(videoCmd)
}

var videoCmd = &cobra.Command{
	Use:     "video-id <url>...",
	Short:   "Extract video ids from Twitch video URLs",
	Aliases: []string{"vid"},
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, arg := range args {
			cmd.Println(video.ExtractID(arg))
		}
	},
}
