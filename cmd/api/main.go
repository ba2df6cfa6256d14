package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "team-dao",
	Short: "Team governance and treasury service",
	Long: `team-dao ведет команды, голосования за участие в турнирах,
распределение приза и выплаты из казны команды.

Без подкоманды запускает HTTP сервер (аналог "team-dao serve").`,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
