package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ReadBody буферизует тело запроса целиком.
// Ошибка чтения (обрыв соединения, превышение limit) — это внутренняя ошибка, а не 400.
func ReadBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	body := r.Body
	if limit > 0 {
		body = http.MaxBytesReader(w, r.Body, limit)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return raw, nil
}

// DecodeLenient разбирает JSON по политике "lenient JSON":
// пустое, битое или не объектное тело даёт пустую запись T.
// Поля объекта разбираются по одному: поле с неподходящим типом
// остаётся нулевым и не тянет за собой остальные.
// Ошибкой это не считается, обязательные поля проверяет хендлер.
func DecodeLenient[T any](raw []byte) T {
	var v T
	if len(bytes.TrimSpace(raw)) == 0 {
		return v
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return v
	}

	for name, value := range fields {
		one, err := json.Marshal(map[string]json.RawMessage{name: value})
		if err != nil {
			continue
		}
		next := v
		if err := json.Unmarshal(one, &next); err != nil {
			continue
		}
		v = next
	}
	return v
}
