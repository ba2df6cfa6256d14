package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aidar/team-dao/internal/app"
	"github.com/aidar/team-dao/internal/config"
	"github.com/aidar/team-dao/internal/repository/postgres"
	"github.com/aidar/team-dao/internal/service"
)

var creditCmd = &cobra.Command{
	Use:   "credit <account> <amount>",
	Short: "Зачислить средства на счет пользователя",
	Long: `Пополняет кошелек пользователя извне системы, чтобы он мог
пополнять казну команды. Работает только с PostgreSQL хранилищем.`,
	Args: cobra.ExactArgs(2),
	RunE: runCredit,
}

func init() {
	rootCmd.AddCommand(creditCmd)
}

func runCredit(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("некорректная сумма %q: %w", args[1], err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		return fmt.Errorf("credit требует STORAGE_DRIVER=%s", config.StorageDriverPostgres)
	}

	pool, err := app.Connect(cmd.Context(), cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	treasury := service.NewTreasuryService(
		service.Deps{Teams: postgres.NewTeamRepository(pool)},
		postgres.NewAccountRepository(pool),
	)

	balance, err := treasury.Credit(cmd.Context(), args[0], amount)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Баланс %s: %d\n", args[0], balance)
	return nil
}
