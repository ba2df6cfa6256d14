package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidar/team-dao/internal/app"
	"github.com/aidar/team-dao/internal/config"
	"github.com/aidar/team-dao/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить схему БД",
	Long: `Применяет встроенные SQL миграции к базе из DB_* переменных.

С флагом --down удаляет схему вместе с данными.`,
	RunE: runMigrate,
}

var migrateDown bool

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "удалить схему вместо создания")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}

	pool, err := app.Connect(cmd.Context(), cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	name := migrations.InitSchemaUp
	if migrateDown {
		name = migrations.InitSchemaDown
	}

	if err := migrations.Apply(cmd.Context(), pool, name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Миграция %s применена\n", name)
	return nil
}
