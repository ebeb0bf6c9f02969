package model

// Requirement is a volunteer slot attached to an event. Size is the
// number of users that may fulfill it.
type Requirement struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Size        int64   `json:"size"`
	Event       int64   `json:"event,omitempty"`
}

type CreateRequirementRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Size        *int64  `json:"size"`
	Event       int64   `json:"event" binding:"required"`
}

type UpdateRequirementRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Size        *int64  `json:"size"`
}
