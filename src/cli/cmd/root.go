package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swat4julia/swatfreight/src/config"
	"github.com/swat4julia/swatfreight/src/gitref"
	"github.com/swat4julia/swatfreight/src/log"
	"github.com/swat4julia/swatfreight/src/output"
)

var (
	cfgFile string
	rootDir string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "swatfreight",
	Short: "SWAT 4 server deployment configuration",
	Long:  "swatfreight — kits, roles, paths, sources and server settings for deploying a SWAT 4 dedicated server and its mods.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Empty leaves the choice to LOG_LEVEL.
		level := ""
		if verbose {
			level = "debug"
		}
		log.Configure(log.Config{Level: level, NoColor: !output.UseColor()})

		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" {
			return nil
		}

		root := rootDir
		if root == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			root = gitref.DetectRoot(wd)
		}

		var err error
		cfg, err = config.Load(cfgFile, root)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, yaml or toml (default: .swatfreight.yml)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "project root for paths.here (default: git worktree root)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
