package service

import (
	"context"
	"errors"

	"github.com/IvanChernomyrdin/siteauth/internal/server/config"
	"github.com/IvanChernomyrdin/siteauth/internal/server/crypto"
	"github.com/IvanChernomyrdin/siteauth/internal/server/models"
	serr "github.com/IvanChernomyrdin/siteauth/internal/shared/errors"
)

// AuthService реализует регистрацию и вход пользователей.
type AuthService struct {
	users UsersRepo
	pass  crypto.PBKDF2Params
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		pass: crypto.PBKDF2Params{
			Iterations: cfg.Password.Iterations,
			KeyLen:     cfg.Password.KeyLen,
			SaltLen:    cfg.Password.SaltLen,
		},
	}
}

// RegisterInput — данные регистрации. Fullname необязателен.
type RegisterInput struct {
	Fullname *string
	Email    string
	Password string
}

// Register регистрирует нового пользователя.
//
// Валидация только на присутствие: email и пароль не пустые.
// Сначала проверяем, занят ли email, потом вставляем. Между проверкой и вставкой
// возможна гонка, её закрывает уникальный индекс, репозиторий отдаёт ErrAlreadyExists.
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrAlreadyExists
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (int64, error) {
	if in.Email == "" || in.Password == "" {
		return 0, serr.ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, serr.ErrAlreadyExists
	}

	salt, err := crypto.NewSalt(s.pass)
	if err != nil {
		return 0, errors.Join(serr.ErrInternal, err)
	}

	return s.users.Create(ctx, models.User{
		Fullname:     in.Fullname,
		Email:        in.Email,
		PasswordHash: crypto.HashPassword(in.Password, salt, s.pass),
		Salt:         salt,
	})
}

// Login проверяет email и пароль и возвращает публичные данные пользователя.
//
// Поведение:
//   - не раскрывает факт существования email: и неизвестный email,
//     и неверный пароль дают ErrInvalidCredentials
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (models.PublicUser, error) {
	if email == "" || password == "" {
		return models.PublicUser{}, serr.ErrInvalidInput
	}
	// получаем юзера по email
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return models.PublicUser{}, serr.ErrInvalidCredentials
		}
		return models.PublicUser{}, err
	}
	// проверяем пароль
	if !crypto.VerifyPassword(password, u.Salt, u.PasswordHash, s.pass) {
		return models.PublicUser{}, serr.ErrInvalidCredentials
	}

	return u.Public(), nil
}
