package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"todoTracker/internal/app"
	"todoTracker/internal/config"
	"todoTracker/internal/logger"
)

func main() {
	cfg, err := config.Load("config.yml")
	if err != nil {
		log.Fatalf("загрузка конфигурации: %v", err)
	}

	application := app.New(cfg)

	ctx := context.Background()
	if err := application.Init(ctx); err != nil {
		log.Fatalf("инициализация приложения: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Run()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Сервер завершился с ошибкой", err)
		}
	case sig := <-stop:
		logger.Info("Получен сигнал остановки: " + sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer cancel()

	application.Shutdown(shutdownCtx)
}
