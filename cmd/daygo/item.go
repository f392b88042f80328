package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/myeongjunhyun/daygo"
	"github.com/myeongjunhyun/daygo/pkg/core"
)

var itemType string

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage content items on a trip day",
}

var itemAddCmd = &cobra.Command{
	Use:   "add [trip-id] [day-id] [title] [uri]",
	Short: "Attach a photo or file reference to a day",
	Long: `Attach a content reference to a day. The URI is stored verbatim;
daygo never touches the underlying file. New items appear newest first.`,
	Args: cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, err := openStore(ctx)
		if err != nil {
			fatal("Error opening journal", err)
		}

		item, err := store.AddContentItem(ctx, args[0], args[1], daygo.CreateContentItemInput{
			Title: args[2],
			Type:  core.ContentType(itemType),
			URI:   args[3],
		})
		if err != nil {
			fatal("Error adding item", err)
		}
		fmt.Printf("added %s  [%s] %s\n", item.ID, item.Type, item.Title)
	},
}

var itemDescribeCmd = &cobra.Command{
	Use:   "describe [trip-id] [day-id] [item-id] [description]",
	Short: "Set the description memo of a content item",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, err := openStore(ctx)
		if err != nil {
			fatal("Error opening journal", err)
		}

		if err := store.UpdateContentItem(ctx, args[0], args[1], args[2], args[3]); err != nil {
			fatal("Error updating item", err)
		}
		fmt.Printf("updated %s\n", args[2])
	},
}

var itemRemoveCmd = &cobra.Command{
	Use:   "rm [trip-id] [day-id] [item-id]",
	Short: "Remove a content item from a day",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, err := openStore(ctx)
		if err != nil {
			fatal("Error opening journal", err)
		}

		if err := store.DeleteContentItem(ctx, args[0], args[1], args[2]); err != nil {
			fatal("Error removing item", err)
		}
		fmt.Printf("removed %s\n", args[2])
	},
}

func init() {
	rootCmd.AddCommand(itemCmd)
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemDescribeCmd)
	itemCmd.AddCommand(itemRemoveCmd)
	itemAddCmd.Flags().StringVar(&itemType, "type", "photo", "Content type: photo or file")
}
