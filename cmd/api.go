package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lukman83/brandscope/internal/api"
	"github.com/lukman83/brandscope/internal/storage"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the REST API server",
	Long:  "Serve GET /fetch-insights over HTTP, persisting fetched brands to PostgreSQL when a database is configured.",
	RunE:  runAPI,
}

func init() {
	apiCmd.Flags().String("port", "", "HTTP port (default from $PORT or 8080)")
	rootCmd.AddCommand(apiCmd)
}

func runAPI(cmd *cobra.Command, args []string) error {
	log := buildLogger()
	defer log.Sync()

	svc := buildService(log)

	var store api.Persister
	if cfg.DBHost != "" {
		db, err := storage.Open(storage.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		})
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		st := storage.NewStore(db)
		if err := st.InitSchema(context.Background()); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
		store = st
		log.Info("persistence enabled", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
	} else {
		log.Info("persistence disabled, no database configured")
	}

	port := cfg.HTTPPort
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		port = p
	}

	handler := api.NewHandler(svc, store, log)
	router := api.NewRouter(handler, log)

	addr := fmt.Sprintf(":%s", port)
	log.Info("REST API listening", zap.String("addr", addr))
	return router.Run(addr)
}
