// Package config содержит функции для работы с локальным профилем CLI-клиента.
//
// Профиль хранит данные последнего успешного входа и размещается
// в домашней директории пользователя в файле:
//
//	~/.siteauth/profile.json
//
// Пароль и его хэш в профиль не попадают.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Profile — пользователь, под которым последний раз выполнен вход.
type Profile struct {
	Server     string    `json:"server,omitempty"`
	UserID     int64     `json:"user_id,omitempty"`
	Fullname   *string   `json:"fullname,omitempty"`
	Email      string    `json:"email,omitempty"`
	LoggedInAt time.Time `json:"logged_in_at,omitempty"`
}

// LoggedIn сообщает, есть ли в профиле пользователь.
func (p *Profile) LoggedIn() bool {
	return p != nil && p.Email != ""
}

// DefaultPath возвращает путь к профилю в домашней директории пользователя.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".siteauth", "profile.json"), nil
}

// Load загружает профиль из указанного файла.
//
// Если файл не существует, возвращает пустой профиль без ошибки.
// Если файл существует, но содержит некорректный JSON, возвращает ошибку.
func Load(path string) (*Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Profile{}, nil
		}
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save сохраняет профиль в JSON.
// Директория создаётся с правами 0700, файл пишется с правами 0600.
func Save(path string, p *Profile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Remove удаляет профиль. Отсутствие файла не ошибка.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
