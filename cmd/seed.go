package cmd

import (
	"context"
	"log"

	"travel-admin/core/config"
	"travel-admin/core/database"
	"travel-admin/core/logger"
	"travel-admin/feature/admin"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCmd creates the admin credential without starting the server. Useful
// for provisioning a database ahead of the first deploy.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the admin credential",
	Long:  `Creates the single admin credential record if it does not exist yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		svc := admin.NewService(db, cfg.Server, logg)
		if err := svc.Migrate(); err != nil {
			return err
		}
		return svc.Seed(context.Background())
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}
