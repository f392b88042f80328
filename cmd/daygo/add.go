package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/myeongjunhyun/daygo"
)

var addCmd = &cobra.Command{
	Use:   "add [title] [start] [end]",
	Short: "Create a trip with a derived day-by-day itinerary",
	Long: `Create a trip. Dates use the YYYY-MM-DD layout and the start date
must not be after the end date. One itinerary day is derived per calendar
date, inclusive on both ends.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, err := openStore(ctx)
		if err != nil {
			fatal("Error opening journal", err)
		}

		trip, err := store.AddTrip(ctx, daygo.CreateTripInput{
			Title:     args[0],
			StartDate: args[1],
			EndDate:   args[2],
		})
		if err != nil {
			fatal("Error creating trip", err)
		}

		fmt.Printf("created %s  %s  %s .. %s  (%d days)\n",
			trip.ID, trip.Title, trip.StartDate, trip.EndDate, len(trip.Days))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
