package model

type JoinEventRequest struct {
	Event int64 `json:"event" binding:"required"`
	User  int64 `json:"user" binding:"required"`
}

type ParticipantResponse struct {
	User     int64  `json:"user"`
	Username string `json:"username"`
}
