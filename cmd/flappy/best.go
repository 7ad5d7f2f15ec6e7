package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"flappy"
	"flappy/internal/record"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Print the stored best score",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		store, err := flappy.NewRecordStorage(cfg.Record)
		if err != nil {
			return fmt.Errorf("failed to open record store: %w", err)
		}

		best, err := record.Read(store)
		if err != nil {
			logger.Warn("could not read best score, assuming 0", "error", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), best)
		return nil
	},
}
