package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/myeongjunhyun/daygo"
	"github.com/myeongjunhyun/daygo/pkg/core"
)

var (
	verbose bool
	dataDir string
	format  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "daygo",
	Short: "A local travel journal: trips, day-by-day itineraries, checklists",
	Long: `daygo keeps your travel journal in a single local document.
Create a trip with a date range and the itinerary skeleton is derived for you,
one day at a time. Days collect photos and files; trips carry a checklist.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env next to the binary may carry DAYGO_DATA; absence is fine.
		_ = godotenv.Load()

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Data directory (default $DAYGO_DATA or ~/.daygo)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "Document format: json or yaml (default json)")
}

// resolveDataDir picks the data directory: flag, then env, then ~/.daygo.
func resolveDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	if env := os.Getenv("DAYGO_DATA"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".daygo"
	}
	return filepath.Join(home, ".daygo")
}

// openStore builds the store and loads the persisted collection.
func openStore(ctx context.Context) (*core.Store, error) {
	opts := []daygo.Option{
		daygo.WithLogger(slog.Default()),
	}
	if format != "" {
		opts = append(opts, daygo.WithFormat(format))
	}

	store, err := daygo.New(resolveDataDir(), opts...)
	if err != nil {
		return nil, err
	}
	if err := store.LoadTrips(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
