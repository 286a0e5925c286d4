package main

import (
	"context"
	"time"

	"github.com/Yaghost/FitGoal/internal/repository/mongo"

	"github.com/spf13/cobra"
)

var ensureIndexesCmd = &cobra.Command{
	Use:   "ensure-indexes",
	Short: "Create the MongoDB indexes and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbClient, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return err
		}
		defer func() {
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Error("Failed to disconnect MongoDB", "error", err)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		mongo.EnsureIndexes(ctx, dbClient.Database(cfg.Database.Name), log)
		log.Info("Index creation completed", "database", cfg.Database.Name)
		return nil
	},
}
