// Package config содержит инициализацию подключения к базе данных сервера.
//
// Пакет выполняет:
//   - открытие соединения с PostgreSQL (через драйвер pgx);
//   - проверку доступности базы (Ping);
//   - запуск миграций (golang-migrate) при старте сервера.
//
// Глобального *sql.DB нет: OpenDB возвращает пул, которым владеет вызывающий
// (app.App), он же закрывает его при остановке.
package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/jackc/pgx/v4/stdlib"

	"github.com/IvanChernomyrdin/siteauth/internal/shared/logger"
	"github.com/IvanChernomyrdin/siteauth/migrations"
)

// OpenDB открывает подключение к базе данных по cfg.DSN, настраивает пул
// и проверяет доступность базы.
func OpenDB(ctx context.Context, cfg DBConfig, log *logger.HTTPLogger) (*sql.DB, error) {
	customLog := log.Sugar()

	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		customLog.Errorf("error to connect db: %v", err)
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err = db.PingContext(pingCtx); err != nil {
		customLog.Errorf("error check db connection: %v", err)
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return db, nil
}

// Migrate гарантирует наличие схемы: применяет встроенные миграции
// из migrations/postgres. Таблица создаётся через CREATE TABLE IF NOT EXISTS,
// поэтому уже существующая таблица users не мешает.
//
// Если миграции уже применены, ошибка migrate.ErrNoChange не считается ошибкой.
func Migrate(ctx context.Context, db *sql.DB, log *logger.HTTPLogger) error {
	customLog := log.Sugar()

	src, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	if err != nil {
		customLog.Errorf("error reading embedded migrations: %v", err)
		return fmt.Errorf("migrations source: %w", err)
	}

	// отдельное соединение под миграции, пул остаётся открытым
	conn, err := db.Conn(ctx)
	if err != nil {
		customLog.Errorf("error acquiring migration connection: %v", err)
		return fmt.Errorf("migrations conn: %w", err)
	}
	defer conn.Close()

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		customLog.Errorf("error creating migration driver: %v", err)
		return fmt.Errorf("migrations driver: %w", err)
	}

	// создаём миграции с выбранным драйвером
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		customLog.Errorf("error creating migrations: %v", err)
		return fmt.Errorf("migrations: %w", err)
	}

	// запускаем применение миграций
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		customLog.Errorf("error applying migrations: %v", err)
		return fmt.Errorf("apply migrations: %w", err)
	}

	customLog.Info("migrations applied successfully")
	return nil
}
