package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/twitchkit/twitchkit/auth"
	"github.com/twitchkit/twitchkit/chat"
	"github.com/twitchkit/twitchkit/icon"
	"github.com/twitchkit/twitchkit/prefs"
	"github.com/twitchkit/twitchkit/style"
	"github.com/twitchkit/twitchkit/util"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize the stored preferences and integrations",
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := store().Document()
		handleErr(err)
		token, err := auth.OAuthToken(settings(), true, false)
		handleErr(err)

		var lines []string
		for _, category := range []prefs.BlacklistCategory{prefs.User, prefs.Game, prefs.Community} {
			lines = append(lines, style.Faint(string(category)+" blacklist ")+util.Quantify(len(doc.Blacklist[category]), "entry", "entries"))
		}
		for _, content := range []prefs.ContentType{prefs.Stream, prefs.Video, prefs.Clip} {
			lines = append(lines, style.Faint(string(content)+" qualities ")+util.Quantify(len(doc.Qualities[content]), "entry", "entries"))
		}
		lines = append(lines,
			style.Faint("languages ")+value(strings.Join(doc.Languages, ", ")),
			style.Faint("token ")+icon.Get(lo.Ternary(token != "", icon.Success, icon.Fail)),
			style.Faint("chat ")+icon.Get(lo.Ternary(chat.Enabled(settings()), icon.Success, icon.Fail))+" "+style.Faint(chat.Host),
		)

		cmd.Println(style.Box(strings.Join(lines, "\n")))
	},
}
