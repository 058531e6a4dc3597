package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "toptier",
	Short: "Credit report parsing and dispute tooling",
	Long:  "Parses vendor credit reports (HTML or PDF) into structured data, validates dispute evidence, and scores dispute letter strength.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
