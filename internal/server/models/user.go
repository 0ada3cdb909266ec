// Серверная модель пользователя
package models

// User — запись таблицы users целиком, вместе с хэшем и солью.
type User struct {
	ID           int64
	Fullname     *string // может быть NULL
	Email        string
	PasswordHash string
	Salt         string
}

// PublicUser — то, что можно отдать клиенту: без хэша и соли.
type PublicUser struct {
	ID       int64   `json:"id"`
	Fullname *string `json:"fullname"`
	Email    string  `json:"email"`
}

// Public возвращает публичное представление пользователя.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Fullname: u.Fullname,
		Email:    u.Email,
	}
}
