package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidar/team-dao/internal/app"
	"github.com/aidar/team-dao/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP сервер",
	RunE:  runServe,
}

var shutdownTimeout time.Duration

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.PersistentFlags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "время на корректную остановку сервера")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}

	// Создаем экземпляр приложения
	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("не удалось создать приложение: %w", err)
	}

	// Инициализируем приложение (хранилище, события, роутинг)
	if err := application.Initialize(cmd.Context()); err != nil {
		return fmt.Errorf("не удалось инициализировать приложение: %w", err)
	}

	// Настраиваем graceful shutdown для корректного завершения
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Запускаем HTTP сервер в отдельной горутине
	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Ошибка сервера: %v", err)
		}
	}()

	fmt.Printf("Сервер запущен на порту %s\n", cfg.Server.Port)
	fmt.Println("Нажмите Ctrl+C для остановки")

	// Ожидаем сигнал прерывания (Ctrl+C или SIGTERM)
	<-sigChan
	fmt.Println("\nОстановка сервера...")

	// Создаем контекст с таймаутом для graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("не удалось корректно остановить сервер: %w", err)
	}

	fmt.Println("Сервер остановлен")
	return nil
}
