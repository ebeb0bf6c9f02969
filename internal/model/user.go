package model

// User is the public shape of an account, returned by every endpoint
// that embeds user data.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Credential is the stored login row. PasswordHash is the hex digest of
// the password concatenated with Salt; neither field ever leaves the
// service layer.
type Credential struct {
	ID           int64
	Username     string
	PasswordHash string
	Salt         string
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
}

// UsedRequirement is one row of the per-creator requirement usage
// report (requirement name with how often it appears across the
// creator's events).
type UsedRequirement struct {
	Name  string `json:"name"`
	Score int64  `json:"score"`
}
