package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/myeongjunhyun/daygo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of daygo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("daygo version %s\n", strings.TrimSpace(daygo.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
