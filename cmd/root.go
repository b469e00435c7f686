// Package cmd implements the command-line interface for twitchkit.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/twitchkit/twitchkit/color"
	"github.com/twitchkit/twitchkit/config"
	"github.com/twitchkit/twitchkit/constant"
	"github.com/twitchkit/twitchkit/dialog"
	"github.com/twitchkit/twitchkit/icon"
	"github.com/twitchkit/twitchkit/key"
	"github.com/twitchkit/twitchkit/log"
	"github.com/twitchkit/twitchkit/prefs"
	"github.com/twitchkit/twitchkit/style"
	"github.com/twitchkit/twitchkit/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

// rootCmd defines the entry point for the twitchkit application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Manage the preferences of the Twitch media center addon",
	Long: style.Title(constant.App) + "\n\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("Blacklists, default qualities, sorting and language filters for the Twitch addon"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiMagenta + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

func settings() config.Settings {
	return config.NewSettings(viper.GetViper())
}

func store() *prefs.Store {
	return prefs.New(
		prefs.NewFileStorage(where.Preferences()),
		&prefs.Options{Selector: dialog.Survey{PageSize: 15}},
	)
}

func dialogConfirm(prompt string) (bool, error) {
	return dialog.Survey{}.Confirm(prompt, false)
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func highlight(s string) string {
	return style.Fg(color.Purple)(s)
}

func value(s string) string {
	return style.Fg(color.Yellow)(s)
}
