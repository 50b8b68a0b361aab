package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "otiyot",
	Short: "Hebrew letter games for kids",
	Long:  "Otiyot (אותיות) is a terminal game that helps young children learn the Hebrew alphabet.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, launch{})
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default ./config.yaml or $XDG_CONFIG_HOME/otiyot/config.yaml)")
	rootCmd.PersistentFlags().Bool("mute", false, "Disable audio and speech")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides OTIYOT_LOG_FILE)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}
