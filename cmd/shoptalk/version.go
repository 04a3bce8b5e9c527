package main

import (
	"fmt"

	"github.com/shoptalk-ai/shoptalk/internal/build"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("shoptalk %s (%s, %s)\n", build.Version, build.Commit, build.Branch)
		},
	}
}
