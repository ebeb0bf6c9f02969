package model

type CreateFulfillmentRequest struct {
	Requirement int64 `json:"requirement" binding:"required"`
	User        int64 `json:"user" binding:"required"`
}

type FulfillmentResponse struct {
	Requirement int64 `json:"requirement"`
	User        User  `json:"user"`
}
