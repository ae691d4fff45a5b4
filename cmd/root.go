package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agroplan/agro-advisor/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "agro-advisor",
	Short: "Crop planning recommendation engine",
	Long:  "Scores candidate crops for a state and month from historical production, mandi prices, soil profiles and live weather, and recommends what to plant and how much land to commit.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := cfg.Validate(); err != nil {
			return err
		}

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
