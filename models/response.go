package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresAt int64   `json:"expires_at"`
	User      Profile `json:"user"`
}
