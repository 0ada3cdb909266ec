// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service, repository и static слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустой email или пароль)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные (нет такого email или пароль не совпал)
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Ресурс уже существует (email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Путь вышел за пределы корня статики
	ErrForbidden = errors.New("forbidden")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
)
