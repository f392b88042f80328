package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Manage a trip's checklist",
}

var checklistAddCmd = &cobra.Command{
	Use:   "add [trip-id] [text]",
	Short: "Add an unchecked entry to the trip checklist",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, err := openStore(ctx)
		if err != nil {
			fatal("Error opening journal", err)
		}

		entry, err := store.AddChecklistItem(ctx, args[0], args[1])
		if err != nil {
			fatal("Error adding checklist item", err)
		}
		fmt.Printf("added %s  %s\n", entry.ID, entry.Text)
	},
}

var checklistToggleCmd = &cobra.Command{
	Use:   "toggle [trip-id] [item-id]",
	Short: "Flip the checked state of a checklist entry",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, err := openStore(ctx)
		if err != nil {
			fatal("Error opening journal", err)
		}

		if err := store.ToggleChecklistItem(ctx, args[0], args[1]); err != nil {
			fatal("Error toggling checklist item", err)
		}
		fmt.Printf("toggled %s\n", args[1])
	},
}

var checklistRemoveCmd = &cobra.Command{
	Use:   "rm [trip-id] [item-id]",
	Short: "Remove a checklist entry",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, err := openStore(ctx)
		if err != nil {
			fatal("Error opening journal", err)
		}

		if err := store.RemoveChecklistItem(ctx, args[0], args[1]); err != nil {
			fatal("Error removing checklist item", err)
		}
		fmt.Printf("removed %s\n", args[1])
	},
}

func init() {
	rootCmd.AddCommand(checklistCmd)
	checklistCmd.AddCommand(checklistAddCmd)
	checklistCmd.AddCommand(checklistToggleCmd)
	checklistCmd.AddCommand(checklistRemoveCmd)
}
