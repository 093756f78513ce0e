package domain

import "time"

// Notification is one normalized feed entry. Created by normalizing a raw
// backend record on every fetch; lives only for the session lifetime.
type Notification struct {
	Id        string
	User      string // sender display name, "System" when sender missing
	Avatar    string // optional URL
	Content   string // sanitized plain text, empty when absent
	IsRead    bool
	CreatedAt time.Time // zero when the backend timestamp was absent or malformed
	Url       string    // optional deep-link
}

// PageState describes the pagination of the feed.
// After a successful load 1 <= CurrentPage <= TotalPages.
type PageState struct {
	CurrentPage int
	TotalPages  int
	Loading     bool
	Error       string // inline message when the last load failed
}
