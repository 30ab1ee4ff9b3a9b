package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sand "github.com/Dash-Industry-Forum/sand-header-conformance"
)

var checkHeaderCmd = &cobra.Command{
	Use:   "check-header <name> <value>",
	Short: "Check a single SAND header name/value pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			_ = cmd.Help()
			return errors.New("expected exactly two arguments: <name> <value>")
		}
		name, value := args[0], args[1]

		errs := sand.CheckHeaderWithConfig(name, value, currentConfig())
		logResult(name, errs)

		for _, e := range errs {
			fmt.Println(e)
		}
		if len(errs) != 0 {
			return errors.New("header is not conformant")
		}
		fmt.Println("conformant")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkHeaderCmd)
}

func currentConfig() sand.Config {
	return sand.Config{
		WeightPresentIfStrategyRequires:        strictWeight,
		OperationPointsConsistentAttributeList: strictConsistency,
	}
}

func logResult(name string, errs []string) {
	if !verbose {
		return
	}
	logrus.WithFields(logrus.Fields{
		"header":      name,
		"conformant":  len(errs) == 0,
		"error_count": len(errs),
	}).Info("checked header")
}
