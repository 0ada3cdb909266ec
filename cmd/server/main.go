// @title           siteauth API
// @version         1.0
// @description     Регистрация и вход пользователей поверх PostgreSQL.
// @description     Всё, что не /api/register и /api/login, отдаётся как статика.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /
// @schemes http
//
// Package main содержит точку входа сервера siteauth.
//
// Пакет отвечает за жизненный цикл процесса:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации из CONFIG_PATH (по умолчанию ./configs/server.yaml);
//   - подключение к базе и гарантию схемы до начала приёма запросов;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT)
//     и graceful shutdown с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/IvanChernomyrdin/siteauth/internal/server/app"
	"github.com/IvanChernomyrdin/siteauth/internal/server/config"
	"github.com/IvanChernomyrdin/siteauth/internal/shared/logger"
)

func main() {
	// .env читаем до конфига, чтобы ${DATABASE_URL} в yaml подставился
	envErr := godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		// логгер ещё не настроен, пишем хотя бы в stderr
		logger.NewHTTPLogger(logger.Options{Stderr: true}).Sugar().Fatal(err)
	}

	httpLogger := logger.NewHTTPLogger(logger.Options{
		File:   cfg.Log.File,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Stderr: cfg.Log.Stderr,
	})
	defer httpLogger.Sync()
	sugar := httpLogger.Sugar()

	if envErr != nil {
		sugar.Warnf("no .env file loaded, error: %v", envErr)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// бд + схема + роутер; без них порт не открываем
	a, err := app.New(ctx, cfg, httpLogger)
	if err != nil {
		sugar.Fatalf("startup failed: %v", err)
	}
	defer a.Close()

	// ожидание и единая обработка ошибок
	if err := a.Run(ctx); err != nil {
		a.Close()
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
