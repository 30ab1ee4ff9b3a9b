package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sandcheck",
		Short:        "sandcheck",
		SilenceUsage: true,
		Long:         `Checks SAND (ISO/IEC 23009-5) HTTP header values for grammar conformance.`,
	}

	verbose bool

	strictWeight      bool
	strictConsistency bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each header processed")
	rootCmd.PersistentFlags().BoolVar(&strictWeight, "require-weight", false, "require weight when allocationStrategy mandates it")
	rootCmd.PersistentFlags().BoolVar(&strictConsistency, "require-consistent-attrs", false, "require a consistent optional-attribute set across operation points")
	return rootCmd.Execute()
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
