package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [trip-id]",
	Short: "Delete a trip and everything it contains",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, err := openStore(ctx)
		if err != nil {
			fatal("Error opening journal", err)
		}

		if err := store.DeleteTrip(ctx, args[0]); err != nil {
			fatal("Error deleting trip", err)
		}
		fmt.Printf("deleted %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
