package main

import (
	"errors"
	"fmt"
	"os"

	"gitlingo.dev/gitlingo/internal/cli"
	"gitlingo.dev/gitlingo/internal/cli/common"
)

var version = "dev"

func main() {
	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		// A failed outcome has already printed its status line
		if !errors.Is(err, common.ErrCommandFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
