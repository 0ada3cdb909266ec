// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация и вход.
package api

// RegisterRequest описывает тело запроса регистрации пользователя.
// Fullname необязателен: nil не попадает в JSON, и сервер сохранит NULL.
type RegisterRequest struct {
	Fullname *string `json:"fullname,omitempty"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User — публичные данные пользователя из ответа /api/login.
type User struct {
	ID       int64   `json:"id"`
	Fullname *string `json:"fullname"`
	Email    string  `json:"email"`
}

// Response — общий формат ответов API.
type Response struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}

// Register регистрирует пользователя через POST /api/register.
func (c *Client) Register(fullname *string, email, password string) (Response, error) {
	var resp Response
	err := c.PostJSON("/api/register", RegisterRequest{Fullname: fullname, Email: email, Password: password}, &resp)
	return resp, err
}

// Login выполняет вход через POST /api/login и возвращает данные пользователя.
func (c *Client) Login(email, password string) (User, error) {
	var resp Response
	if err := c.PostJSON("/api/login", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return User{}, err
	}
	if resp.User == nil {
		return User{}, &Error{Status: 200, Message: "response without user"}
	}
	return *resp.User, nil
}
