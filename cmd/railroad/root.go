package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "railroad [files...]",
	Short: "Render railroad diagrams from the diagram DSL",
	Long: `Process railroad diagrams according to the DSL.

If no input files are given, act as a pipe from stdin to stdout.
Otherwise, process each input file into an output file with
the file extension replaced by .svg or .png. To render a file
named like a subcommand, give its path, e.g. ./fmt.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runRender,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")
	rootCmd.PersistentFlags().Bool("single", false, "Require exactly one diagram per input")
	rootCmd.PersistentFlags().Int("max-depth", 0, "Maximum bracket nesting depth (0 for no limit)")

	rootCmd.Flags().StringP("format", "f", "svg", "Output format: svg or png (png text uses a fixed bitmap font)")
	rootCmd.Flags().String("css", "", "Stylesheet file overriding the theme")
	rootCmd.Flags().String("theme", "light", "Built-in stylesheet: light or dark")
	rootCmd.Flags().Int("max-width", 0, "Maximum PNG width in pixels (0 for no limit)")
	rootCmd.Flags().Int("max-height", 0, "Maximum PNG height in pixels (0 for no limit)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("single", rootCmd.PersistentFlags().Lookup("single"))
	_ = viper.BindPFlag("max_depth", rootCmd.PersistentFlags().Lookup("max-depth"))
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("css", rootCmd.Flags().Lookup("css"))
	_ = viper.BindPFlag("theme", rootCmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("max_width", rootCmd.Flags().Lookup("max-width"))
	_ = viper.BindPFlag("max_height", rootCmd.Flags().Lookup("max-height"))
}

func initConfig() {
	viper.SetEnvPrefix("RAILROAD")
	viper.AutomaticEnv()
}
