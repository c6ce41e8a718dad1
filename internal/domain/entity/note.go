package entity

import "time"

// Note is a personal note shown on its owner's dashboard.
// Notes are scoped to the owning user; only the owner may edit or
// delete them.
type Note struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    int       `json:"userId"`
}
