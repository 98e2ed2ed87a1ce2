package domain

import (
	"errors"
	"time"
)

var ErrCardNotFound = errors.New("card not found")

// Card is a board entry. ID and both timestamps are assigned by the store at
// insert time; CreatedAt is the sort key for board listings.
type Card struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ProjectName string    `json:"project_name,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
