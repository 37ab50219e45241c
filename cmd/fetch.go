package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lukman83/brandscope/internal/insights"
	"github.com/lukman83/brandscope/internal/ui"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [website-url]",
	Short: "Fetch brand insights for a storefront website",
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().String("format", "json", "Output format: json, summary")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	svc := buildService(zap.NewNop())

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Fetching insights for %s...", args[0]))
	ctx := insights.WithProgress(context.Background(), spin.Update)
	profile := svc.Fetch(ctx, args[0])
	spin.Stop()

	if len(profile.Errors) > 0 {
		return fmt.Errorf("fetch failed: %s", profile.Errors[0])
	}

	switch format {
	case "summary":
		printSummary(profile)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(profile)
	}

	return nil
}
