package domain

import "time"

// OrphanedUpload is a stored evidence object that no booking references.
type OrphanedUpload struct {
	ID        string    `json:"id"`
	ObjectKey string    `json:"object_key"`
	Reason    string    `json:"reason"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"created_at"`
}
