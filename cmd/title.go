package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/twitchkit/twitchkit/key"
	"github.com/twitchkit/twitchkit/title"
)

func init() {
	rootCmd.AddCommand(titleCmd)

	titleCmd.Flags().StringP("streamer", "s", "", "Streamer name")
	titleCmd.Flags().StringP("title", "t", "", "Stream title")
	titleCmd.Flags().StringP("game", "g", "", "Game name")
	titleCmd.Flags().IntP("viewers", "w", 0, "Viewer count")
	titleCmd.Flags().StringP("language", "l", "", "Broadcaster language")
}

var titleCmd = &cobra.Command{
	Use:   "title",
	Short: "Preview how a stream title is displayed with the current settings",
	Run: func(cmd *cobra.Command, args []string) {
		flag := func(name string) string {
			return lo.Must(cmd.Flags().GetString(name))
		}

		builder := title.New(viper.GetInt(key.TitleLineLength), settings())
		formatted, err := builder.Format(map[string]any{
			title.StreamerField:            flag("streamer"),
			title.TitleField:               flag("title"),
			title.GameField:                flag("game"),
			title.ViewersField:             lo.Must(cmd.Flags().GetInt("viewers")),
			title.BroadcasterLanguageField: flag("language"),
		})
		handleErr(err)

		cmd.Println(formatted)
	},
}
