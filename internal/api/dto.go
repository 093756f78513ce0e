package api

// DTOs for the backend notification API consumed by this service.

// NotificationRecord is one raw notification as the backend returns it.
// Sender fields and url are optional; Data.Message may be absent.
type NotificationRecord struct {
	Id           string           `json:"id"`
	SenderName   string           `json:"sender_name,omitempty"`
	SenderAvatar string           `json:"sender_avatar,omitempty"`
	Data         NotificationData `json:"data"`
	Read         bool             `json:"read"`
	CreatedAt    string           `json:"created_at"`
	Url          string           `json:"url,omitempty"`
}

type NotificationData struct {
	Message string `json:"message,omitempty"`
}

// NotificationsPage is one page of the paginated feed.
// A missing Data array is treated as an empty page; missing page
// numbers default to 1 on the consumer side.
type NotificationsPage struct {
	Data        []NotificationRecord `json:"data"`
	CurrentPage int                  `json:"current_page"`
	LastPage    int                  `json:"last_page"`
}

// MutationResponse is the optional body of read/delete/read-all mutations.
type MutationResponse struct {
	Message string `json:"message,omitempty"`
}

// AttachRequest adds one attachment to the composer.
type AttachRequest struct {
	Kind     string        `json:"kind" validate:"required,oneof=image video document poll"`
	Url      string        `json:"url,omitempty"`
	Name     string        `json:"name,omitempty"`
	Size     int64         `json:"size,omitempty" validate:"gte=0"`
	Question string        `json:"question,omitempty"`
	Options  []OptionInput `json:"options,omitempty" validate:"dive"`
}

type OptionInput struct {
	Text string `json:"text" validate:"required"`
}
