// Package main is the entry point for the notox CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/eykd/notox-go/cmd"
)

// Version information, injected at build time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	cmd.SetVersionInfo(rootCmd, Version, Commit, BuildDate)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
