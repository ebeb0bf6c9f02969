package model

// AuthUser is the request-scoped identity produced by the token
// middleware. It lives only for the duration of a single request.
type AuthUser struct {
	ID       int64
	Username string
}

type AuthenticateRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthenticateResponse struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
}

type CaptchaRequest struct {
	Token string `json:"token" binding:"required"`
}
