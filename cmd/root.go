package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lukman83/brandscope/config"
	"github.com/lukman83/brandscope/internal/httputil"
	"github.com/lukman83/brandscope/internal/insights"
	"github.com/lukman83/brandscope/internal/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "brandscope",
	Short: "Brandscope - storefront brand insights fetcher",
	Long:  "Fetches a storefront's public pages and infers structured brand metadata: platform detection, product catalog, policies, contacts, social links and FAQs.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("timeout", "", "Per-request timeout (e.g. 20s)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("timeout"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v, _ := rootCmd.PersistentFlags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
}

// buildService wires the shared HTTP client into the insights pipeline.
func buildService(log *zap.Logger) *insights.Service {
	client := httputil.NewClient(nil, cfg.RequestTimeout)
	return insights.NewService(client, log, insights.Config{
		CatalogPageSize: cfg.CatalogPageSize,
		CatalogMaxPages: cfg.CatalogMaxPages,
	})
}

func buildLogger() *zap.Logger {
	return logger.New(cfg.LogLevel)
}
