package models

import "time"

// Author is the post author's account metadata as returned by the
// timeline provider.
type Author struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// Post represents a single social-media post. Immutable once fetched;
// consumers filter to the trailing 7-day window at read time.
type Post struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	Views     int64     `json:"views"`
}
