package main

import (
	"fmt"

	"blogtags/internal/client"
	"blogtags/internal/composer"
	"blogtags/internal/tui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	endpointFlag string
	configFlag   string
	formatFlag   string
	noColorFlag  bool

	settings cliConfig
)

var rootCmd = &cobra.Command{
	Use:           "composer",
	Short:         "Compose tags for a blog post",
	Long:          `Interactive tag composer backed by a running blog tags server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColorFlag {
			color.NoColor = true
		}
		resolved, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		settings = resolved
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := composer.ParseFormat(settings.Format)
		if err != nil {
			return err
		}
		clip := composer.SystemClipboard{}
		if !clip.Available() {
			fmt.Fprintln(cmd.ErrOrStderr(), warning("no clipboard utility found, copy will fail"))
		}
		return tui.Run(client.New(settings.Endpoint), clip, tui.Options{Format: format, NoColor: noColorFlag})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", defaultEndpoint, "base URL of the blog tags server")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default $HOME/.config/blogtags/composer.yaml)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", string(composer.DefaultFormat), `copy format: "#", "-", "," or "no separator"`)
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}
