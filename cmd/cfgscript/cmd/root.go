package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "cfgscript",
		Short:        "cfgscript",
		SilenceUsage: true,
		Long:         `CLI tool for loading and inspecting cfgscript configuration sources.`,
	}

	directory string
	sources   []string
	restrict  bool
	verbose   bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory cfgscript.yaml and relative sources are resolved against")
	rootCmd.PersistentFlags().StringSliceVarP(&sources, "source", "s", nil, "additional source path, tried before the ones listed in cfgscript.yaml; repeatable")
	rootCmd.PersistentFlags().BoolVar(&restrict, "restrict", false, "load in restricted mode: only resource declarations take effect")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	return rootCmd.Execute()
}

func newLogger() logrus.FieldLogger {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func init() {
}
