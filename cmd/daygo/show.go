package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [trip-id]",
	Short: "Show one trip with its days, content and checklist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, err := openStore(ctx)
		if err != nil {
			fatal("Error opening journal", err)
		}

		if err := store.SetCurrentTrip(args[0]); err != nil {
			fatal("Error selecting trip", err)
		}
		trip, _ := store.CurrentTrip()

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(trip); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		fmt.Printf("%s  %s .. %s\n", trip.Title, trip.StartDate, trip.EndDate)
		for _, d := range trip.Days {
			fmt.Printf("  day %d  %s  (%s)\n", d.DayNumber, d.Date, d.ID)
			for _, it := range d.Items {
				fmt.Printf("    [%s] %s  %s\n", it.Type, it.Title, it.URI)
				if it.Description != "" {
					fmt.Printf("      %s\n", it.Description)
				}
			}
		}
		if len(trip.Checklist) > 0 {
			fmt.Println("  checklist:")
			for _, c := range trip.Checklist {
				mark := " "
				if c.IsChecked {
					mark = "x"
				}
				fmt.Printf("    [%s] %s  (%s)\n", mark, c.Text, c.ID)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
