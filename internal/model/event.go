package model

type Event struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Creator     User    `json:"creator"`
}

// EventDetail is the expanded single-event view with everything hanging
// off the event.
type EventDetail struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Description  *string          `json:"description"`
	Participants []User           `json:"participants"`
	Requirements []Requirement    `json:"requirements"`
	Fulfillments []EventFulfiller `json:"fullfillments"`
	Creator      User             `json:"creator"`
}

// EventFulfiller ties a user to the requirement they fulfill within one
// event's detail view.
type EventFulfiller struct {
	Requirement int64 `json:"requirement"`
	User        User  `json:"user"`
}

type CreateEventRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Creator     int64   `json:"creator" binding:"required"`
}

type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
