package static

import (
	"errors"
	"io"
	"net/http"
	"os"

	"go.uber.org/zap"

	serr "github.com/IvanChernomyrdin/siteauth/internal/shared/errors"
	"github.com/IvanChernomyrdin/siteauth/internal/shared/logger"
)

// Handler отдаёт статику для любого метода и пути, не занятого API.
type Handler struct {
	Resolver *Resolver
	Log      *logger.HTTPLogger
}

// NewHandler создаёт Handler поверх resolver.
func NewHandler(resolver *Resolver, log *logger.HTTPLogger) *Handler {
	return &Handler{Resolver: resolver, Log: log}
}

// ServeHTTP отвечает:
//   - 200 и байты файла;
//   - 403 Forbidden при попытке выйти за корень;
//   - 404 Not found, если файла нет или его не удалось открыть.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path, err := h.Resolver.Resolve(r.URL.Path)
	if err != nil {
		if errors.Is(err, serr.ErrForbidden) {
			h.Log.Warn("path traversal rejected", zap.String("path", r.URL.Path))
			writeText(w, http.StatusForbidden, "Forbidden")
			return
		}
		writeText(w, http.StatusNotFound, "Not found")
		return
	}

	// файл мог исчезнуть между Stat и Open — тогда тоже 404
	f, err := os.Open(path)
	if err != nil {
		writeText(w, http.StatusNotFound, "Not found")
		return
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil || !fi.Mode().IsRegular() {
		writeText(w, http.StatusNotFound, "Not found")
		return
	}

	w.Header().Set("Content-Type", ContentType(path))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		h.Log.Warn("static copy interrupted", zap.String("path", path), zap.Error(err))
	}
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	io.WriteString(w, msg)
}
