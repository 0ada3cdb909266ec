// Package app владеет состоянием процесса сервера: пулом соединений с бд,
// собранным роутером и http.Server.
//
// Всё создаётся один раз при старте (New) и освобождается при остановке (Close).
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/siteauth/internal/server/api"
	"github.com/IvanChernomyrdin/siteauth/internal/server/config"
	h "github.com/IvanChernomyrdin/siteauth/internal/server/net/http"
	"github.com/IvanChernomyrdin/siteauth/internal/server/repository"
	"github.com/IvanChernomyrdin/siteauth/internal/server/service"
	"github.com/IvanChernomyrdin/siteauth/internal/server/static"
	"github.com/IvanChernomyrdin/siteauth/internal/shared/logger"
)

type App struct {
	cfg    *config.Config
	log    *logger.HTTPLogger
	db     *sql.DB
	server *http.Server
}

// New подключается к базе, гарантирует схему и собирает сервер.
// Любая ошибка здесь означает, что слушать порт нельзя.
func New(ctx context.Context, cfg *config.Config, log *logger.HTTPLogger) (*App, error) {
	db, err := config.OpenDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	migrateCtx := ctx
	if cfg.DB.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		migrateCtx, cancel = context.WithTimeout(ctx, cfg.DB.ConnectTimeout)
		defer cancel()
	}

	if err := config.Migrate(migrateCtx, db, log); err != nil {
		db.Close()
		return nil, err
	}

	a, err := Build(cfg, log, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

// Build собирает репозитории, сервисы, хендлеры и роутер поверх готового пула.
// Пулом с этого момента владеет App.
func Build(cfg *config.Config, log *logger.HTTPLogger, db *sql.DB) (*App, error) {
	// создаём репы
	repos := service.Repositories{
		Users: repository.NewUsersRepository(db),
	}
	// создаём сервис
	svc := service.NewServices(repos, cfg)
	// создаём хандлер
	handler := api.NewHandler(svc, log, cfg.Server.MaxBodyBytes)

	resolver, err := static.NewResolver(cfg.Static.Root)
	if err != nil {
		return nil, err
	}
	files := static.NewHandler(resolver, log)

	// создаём роутер
	router := h.NewRouter(handler, files, h.Options{Log: log, Docs: cfg.Docs.Enabled})

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	log.Info("static root", zap.String("root", resolver.Root()))

	return &App{cfg: cfg, log: log, db: db, server: server}, nil
}

// Handler возвращает корневой http.Handler (роутер со всеми middleware).
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run слушает cfg.Server.Addr() и обслуживает запросы до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln. Когда ctx отменён, сервер
// останавливается через Shutdown с таймаутом из конфига.
// После корректной остановки возвращает nil.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	sugar := a.log.Sugar()

	g, gctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s", ln.Addr())

		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-gctx.Done()

		sugar.Info("shutdown signal received")

		// родительский ctx уже отменён, поэтому отсчёт от Background
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		return a.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close закрывает пул соединений с бд.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
