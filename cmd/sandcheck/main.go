package main

import (
	"os"

	"github.com/Dash-Industry-Forum/sand-header-conformance/cmd/sandcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
