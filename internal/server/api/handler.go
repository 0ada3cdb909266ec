// Package api реализует HTTP-слой сервера.
//
// Пакет отвечает за:
//   - обработку запросов /api/register и /api/login;
//   - чтение тела запроса по политике "lenient JSON";
//   - формирование ответов {"ok": ..., "message": ...};
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/siteauth/internal/server/models"
	"github.com/IvanChernomyrdin/siteauth/internal/server/service"
	"github.com/IvanChernomyrdin/siteauth/internal/shared/logger"
)

// Каждый метод API отвечает в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Тексты ответов API.
const (
	MsgRegistered         = "Registered"
	MsgLoggedIn           = "Logged in"
	MsgCredentialsMissing = "Email and password required"
	MsgEmailTaken         = "Email already registered"
	MsgInvalidCredentials = "Invalid credentials"
	MsgServerError        = "Server error"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - MaxBodyBytes: лимит тела запроса (0 — без лимита).
type Handler struct {
	Svc          *service.Services
	Log          *logger.HTTPLogger
	MaxBodyBytes int64
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, maxBodyBytes int64) *Handler {
	return &Handler{
		Svc:          svc,
		Log:          log,
		MaxBodyBytes: maxBodyBytes,
	}
}

// Response — общий конверт ответа API.
type Response struct {
	OK      bool               `json:"ok"`
	Message string             `json:"message"`
	User    *models.PublicUser `json:"user,omitempty"`
}

// WriteJSON пишет ответ API с нужным статусом.
func WriteJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{OK: false, Message: message})
}
