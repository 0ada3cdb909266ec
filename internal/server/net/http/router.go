// Package http реализует маршрутизацию HTTP-слоя сервера.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - подключение middleware (access-лог, перехват паник);
//   - передачу всего, что не API, в раздачу статики.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/siteauth/internal/server/api"
	"github.com/IvanChernomyrdin/siteauth/internal/server/middleware"
	"github.com/IvanChernomyrdin/siteauth/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/siteauth/swagger/docs"
)

// Options — то, что роутеру нужно кроме хендлеров.
type Options struct {
	Log  *logger.HTTPLogger
	Docs bool // регистрировать ли /swagger/*
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - POST /api/register и POST /api/login;
//   - /swagger/* при включённой документации;
//   - всё остальное (любой метод, любой путь, в том числе GET /api/login)
//     уходит в files через NotFound/MethodNotAllowed.
func NewRouter(h *api.Handler, files http.Handler, opts Options) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(opts.Log))
	// паника в хендлере -> 500 JSON
	r.Use(middleware.RecoverMiddleware(opts.Log))

	if opts.Docs {
		// добавляем swagger
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	// API
	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)

	// статика
	r.NotFound(files.ServeHTTP)
	r.MethodNotAllowed(files.ServeHTTP)

	return r
}
