package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sand "github.com/Dash-Industry-Forum/sand-header-conformance"
)

var checkHeadersCmd = &cobra.Command{
	Use:   "check-headers <file>",
	Short: "Check every 'Name: Value' header line in a file, honoring SAND-DeliveredAlternative sibling-header rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("expected exactly one argument: <file>")
		}

		headers, err := readHeaderFile(args[0])
		if err != nil {
			return err
		}

		reports := sand.CheckHeadersWithConfig(headers, currentConfig())

		nonConformant := 0
		for _, r := range reports {
			logResult(r.Name, r.Errors)
			if len(r.Errors) == 0 {
				continue
			}
			nonConformant++
			fmt.Printf("%s:\n", r.Name)
			for _, e := range r.Errors {
				fmt.Printf("  %s\n", e)
			}
		}

		if nonConformant > 0 {
			return fmt.Errorf("%d of %d headers are not conformant", nonConformant, len(reports))
		}
		fmt.Println("all headers conformant")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkHeadersCmd)
}

/*
readHeaderFile parses a file of "Name: Value" lines, one header per line,
blank lines and lines starting with '#' ignored.
*/
func readHeaderFile(path string) ([]sand.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var headers []sand.Header
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			return nil, fmt.Errorf("%s:%d: expected 'Name: Value', found %q", path, lineNo, line)
		}
		headers = append(headers, sand.Header{
			Name:  strings.TrimSpace(line[:idx]),
			Value: strings.TrimSpace(line[idx+1:]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	logrus.WithField("count", len(headers)).Debug("loaded header file")
	return headers, nil
}
