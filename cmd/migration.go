package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	coreconfig "github.com/AzielCF/az-learn/core/config"
	coreDB "github.com/AzielCF/az-learn/core/database"
	"github.com/AzielCF/az-learn/infrastructure/docstore"
	"github.com/AzielCF/az-learn/pkg/utils"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the document store schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return migrateDocumentStore(cmd.Context(), coreconfig.Global)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

// migrateDocumentStore runs the gorm auto-migration for the documents table.
func migrateDocumentStore(ctx context.Context, cfg *coreconfig.Config) error {
	if cfg.Database.Driver == "memory" {
		logrus.Info("[MIGRATION] Memory document store has no schema, nothing to do")
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Database.Driver == "sqlite" {
		if err := utils.CreateFolder(utils.ParentDir(cfg.Database.Name)); err != nil {
			return err
		}
	}

	db, err := coreDB.NewDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = coreDB.Close(db) }()

	if err := docstore.NewGormStore(db).Init(ctx); err != nil {
		return fmt.Errorf("failed to migrate documents table: %w", err)
	}
	logrus.Infof("[MIGRATION] %s document store is up to date", cfg.Database.Driver)
	return nil
}
