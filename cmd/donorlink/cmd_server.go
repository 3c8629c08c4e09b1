package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/donorlink/app/routes"
	"github.com/shashiranjanraj/donorlink/config"
	"github.com/shashiranjanraj/donorlink/database/seeders"
	"github.com/shashiranjanraj/donorlink/internal/kernel"
	"github.com/shashiranjanraj/donorlink/internal/server"
	"github.com/shashiranjanraj/donorlink/pkg/auth"
	"github.com/shashiranjanraj/donorlink/pkg/cache"
	"github.com/shashiranjanraj/donorlink/pkg/logger"
	"github.com/shashiranjanraj/donorlink/pkg/migration"
	"github.com/shashiranjanraj/donorlink/pkg/router"
)

var servePort string

// donorlink serve — migrate, seed and serve until SIGINT/SIGTERM.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run", "start"},
	Short:   "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := config.Load(); err != nil {
			return err
		}
		flushLogs, err := logger.Setup()
		if err != nil {
			return err
		}
		defer flushLogs()

		hasher, err := auth.HasherFromConfig()
		if err != nil {
			return err
		}

		return withDB(func(db *gorm.DB) error {
			if err := migration.New(db).Quiet().Run(); err != nil {
				return err
			}

			if err := cache.Connect(ctx); err != nil {
				logger.Warn("cache unavailable, serving uncached", "error", err)
			}
			defer cache.Close() //nolint:errcheck

			if err := seeders.Run(ctx, db, hasher); err != nil {
				return err
			}

			port := servePort
			if port == "" {
				port = config.AppPort()
			}
			srv := server.New(":"+port, kernel.NewHandler(db, hasher))
			logger.Info("starting donorlink", "env", config.AppEnv(), "db", config.DatabaseDriver())
			if err := server.Start(ctx, srv); err != nil {
				logger.Error("server stopped", "error", err)
				return err
			}
			return nil
		})
	},
}

// donorlink route:list
var routeListCmd = &cobra.Command{
	Use:     "route:list",
	Aliases: []string{"routes"},
	Short:   "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()
		routes.RegisterAPI(r, auth.PlainHasher{})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range r.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (default APP_PORT)")
}
