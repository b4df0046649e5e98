package cmd

import (
	"os"

	"github.com/koskimas/propgen/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewRootCmd() *cobra.Command {
	var (
		dir        string
		configFile string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:           "propgen",
		Short:         "Compute C++ prop fragments from component schemas",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = wd
			}

			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return Run(Settings{
				WorkingDir: dir,
				ConfigFile: configFile,
				Logger:     logger,
			})
		},
	}

	rootCmd.Flags().StringVarP(&dir, "dir", "d", "", "working directory (defaults to the current directory)")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", config.DefaultFile, "config file relative to the working directory")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	return rootCmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}
