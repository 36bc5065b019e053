package domain

import "time"

// Timestamps holds the row bookkeeping fields maintained by the repository.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
