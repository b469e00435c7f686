package cmd

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/twitchkit/twitchkit/auth"
	"github.com/twitchkit/twitchkit/color"
	"github.com/twitchkit/twitchkit/open"
	"github.com/twitchkit/twitchkit/style"
)

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().BoolP("bare", "b", false, "Print the token without the oauth: prefix")
	tokenCmd.Flags().BoolP("required", "r", false, "Fail when no token is available")
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print the OAuth token, client id and redirect URI",
	Run: func(cmd *cobra.Command, args []string) {
		s := settings()

		token, err := auth.OAuthToken(s, lo.Must(cmd.Flags().GetBool("bare")), lo.Must(cmd.Flags().GetBool("required")))
		handleErr(err)
		clientID, err := auth.ClientID(s)
		handleErr(err)
		redirect, err := auth.RedirectURI(s)
		handleErr(err)

		cmd.Printf("%s %s\n", style.Faint("token       "), value(lo.Ternary(token != "", token, "-")))
		cmd.Printf("%s %s\n", style.Faint("client id   "), value(clientID))
		cmd.Printf("%s %s\n", style.Faint("redirect uri"), value(redirect))
	},
}

func init() {
	tokenCmd.AddCommand(tokenLoginCmd)
	tokenLoginCmd.Flags().BoolP("browser", "b", false, "Open the Twitch authorization page first")
}

var tokenLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store an OAuth token in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		authorize, err := auth.AuthorizeURL(settings())
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("browser")) {
			handleErr(open.Start(authorize))
		} else {
			cmd.Printf("Authorize at %s\n", style.Fg(color.Blue)(authorize))
		}

		var token string
		err = survey.AskOne(&survey.Password{Message: "OAuth token"}, &token, survey.WithValidator(survey.Required))
		if errors.Is(err, terminal.InterruptErr) {
			return
		}
		handleErr(err)

		handleErr(auth.SetToken(auth.Normalize(strings.TrimSpace(token), false)))
		success("token stored in keyring")
	},
}

func init() {
	tokenCmd.AddCommand(tokenLogoutCmd)
}

var tokenLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the OAuth token from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		confirmed, err := dialogConfirm("Remove the stored token?")
		handleErr(err)
		if !confirmed {
			return
		}

		handleErr(auth.DeleteToken())
		success("token removed from keyring")
	},
}
