package api

// AnonymousSignInRequest представляет запрос на анонимный вход
// AdminKey опционален: при совпадении с ключом сервера токен получает admin claim
type AnonymousSignInRequest struct {
	AdminKey string `json:"admin_key,omitempty"`
}

// TokenResponse представляет ответ с токенами доступа
type TokenResponse struct {
	PrincipalID  string `json:"principal_id"`  // идентификатор анонимного principal
	AccessToken  string `json:"access_token"`  // JWT access token
	RefreshToken string `json:"refresh_token"` // refresh token
	ExpiresIn    int64  `json:"expires_in"`    // время жизни access token в секундах
	Admin        bool   `json:"admin"`         // platform admin claim
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Code    string `json:"code,omitempty"`    // машиночитаемый код (см. Code*)
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// Коды ошибок, передаваемые в ErrorResponse.Code
const (
	CodeUnauthenticated    = "unauthenticated"
	CodePermissionDenied   = "permission-denied"
	CodeNotFound           = "not-found"
	CodeInvalidArgument    = "invalid-argument"
	CodeAlreadyExists      = "already-exists"
	CodeFailedPrecondition = "failed-precondition"
	CodeInternal           = "internal"
)
