package item

import "time"

// Item is the persisted resource managed by this service. The ID is assigned
// by the store on creation and never changes afterwards.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Draft is the caller-supplied field set for a create or a full-replacement
// update, prior to ID assignment. A nil Description persists as absent.
type Draft struct {
	Name        string
	Description *string
	Done        bool
}
