package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/donorlink/config"
	"github.com/shashiranjanraj/donorlink/database/seeders"
	"github.com/shashiranjanraj/donorlink/pkg/auth"
	"github.com/shashiranjanraj/donorlink/pkg/cache"
	"github.com/shashiranjanraj/donorlink/pkg/database"
	"github.com/shashiranjanraj/donorlink/pkg/logger"
	"github.com/shashiranjanraj/donorlink/pkg/migration"
)

// withDB loads config, connects, runs fn and closes the pool.
func withDB(fn func(db *gorm.DB) error) error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := database.Connect(); err != nil {
		return err
	}
	defer database.Close(database.DB) //nolint:errcheck
	return fn(database.DB)
}

// donorlink migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Running migrations…")
			return migration.New(db).Run()
		})
	},
}

// donorlink migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:     "migrate:rollback",
	Aliases: []string{"migrate:down"},
	Short:   "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Rolling back last batch…")
			return migration.New(db).Rollback()
		})
	},
}

// donorlink migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			return migration.New(db).Status()
		})
	},
}

// donorlink seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the administrator, organ and hospital reference data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			hasher, err := auth.HasherFromConfig()
			if err != nil {
				return err
			}
			if err := cache.Connect(cmd.Context()); err != nil {
				logger.Warn("cache unavailable, skipping invalidation", "error", err)
			}
			defer cache.Close() //nolint:errcheck

			if err := seeders.Run(cmd.Context(), db, hasher); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Seeding complete.")
			return nil
		})
	},
}
