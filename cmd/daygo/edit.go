package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [trip-id] [title] [start] [end]",
	Short: "Retitle a trip and/or change its date range",
	Long: `Retitle a trip. If the date range differs from the stored one, the
itinerary is regenerated from scratch and all day content is discarded; the
checklist survives. With unchanged dates only the title is touched.`,
	Args: cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, err := openStore(ctx)
		if err != nil {
			fatal("Error opening journal", err)
		}

		if err := store.UpdateTripDates(ctx, args[0], args[1], args[2], args[3]); err != nil {
			fatal("Error updating trip", err)
		}
		fmt.Printf("updated %s\n", args[0])
	},
}

var coverCmd = &cobra.Command{
	Use:   "cover [trip-id] [uri]",
	Short: "Set or clear a trip's cover image reference",
	Long:  `Set the cover image URI of a trip. An empty string clears it back to the default cover.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, err := openStore(ctx)
		if err != nil {
			fatal("Error opening journal", err)
		}

		if err := store.SetCoverImage(ctx, args[0], args[1]); err != nil {
			fatal("Error setting cover", err)
		}
		fmt.Printf("updated %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(coverCmd)
}
