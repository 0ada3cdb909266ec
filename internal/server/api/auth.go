// HTTP-хендлеры регистрации и логина
package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/siteauth/internal/server/service"
	serr "github.com/IvanChernomyrdin/siteauth/internal/shared/errors"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Fullname *string `json:"fullname"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна;
//   - 400 Bad Request: нет email или пароля (в том числе при битом JSON);
//   - 409 Conflict: email уже зарегистрирован;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary  Регистрация пользователя
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body  body      RegisterRequest  true  "данные регистрации"
// @Success  201   {object}  Response
// @Failure  400   {object}  Response
// @Failure  409   {object}  Response
// @Failure  500   {object}  Response
// @Router   /api/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	raw, err := ReadBody(w, r, h.MaxBodyBytes)
	if err != nil {
		h.Log.Error("register failed", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, MsgServerError)
		return
	}
	req := DecodeLenient[RegisterRequest](raw)

	_, err = h.Svc.Auth.Register(r.Context(), service.RegisterInput{
		Fullname: req.Fullname,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, MsgCredentialsMissing)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusConflict, MsgEmailTaken)
		default:
			h.Log.Error("register failed", zap.Error(err))
			WriteError(w, http.StatusInternalServerError, MsgServerError)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, Response{OK: true, Message: MsgRegistered})
}

// Login обрабатывает вход пользователя.
//
// Ответы:
//   - 200 OK: успешный вход, в теле user {id, fullname, email};
//   - 400 Bad Request: нет email или пароля;
//   - 401 Unauthorized: неверные учётные данные (без уточнения, что именно не так);
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary  Вход пользователя
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body  body      LoginRequest  true  "email и пароль"
// @Success  200   {object}  Response
// @Failure  400   {object}  Response
// @Failure  401   {object}  Response
// @Failure  500   {object}  Response
// @Router   /api/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	raw, err := ReadBody(w, r, h.MaxBodyBytes)
	if err != nil {
		h.Log.Error("login failed", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, MsgServerError)
		return
	}
	req := DecodeLenient[LoginRequest](raw)

	user, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, MsgCredentialsMissing)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, MsgInvalidCredentials)
		default:
			h.Log.Error("login failed", zap.Error(err))
			WriteError(w, http.StatusInternalServerError, MsgServerError)
		}
		return
	}

	WriteJSON(w, http.StatusOK, Response{OK: true, Message: MsgLoggedIn, User: &user})
}
