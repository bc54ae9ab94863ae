package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "utilcss",
	Short: "Utility-class shorthand to CSS generator",
	Long: `Generate CSS for the utility classes your markup actually uses.
Classes such as hbox(pack+gap-lg), c(white.8) or lg:hover:bg(blue-500)
are parsed, resolved against design tokens and emitted as a stylesheet.`,
	// Without a subcommand, generate. generateCmd's PreRunE does not run
	// on this path, so config is loaded here.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(generateCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress reports and warnings")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".utilcss.yaml", "Config file path")
	rootCmd.PersistentFlags().String("tokens", "", "TOML file with extra design tokens")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(classCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
