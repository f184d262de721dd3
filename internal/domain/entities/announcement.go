package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Announcement is platform news shown on investor dashboards once published
type Announcement struct {
	ID               uuid.UUID   `json:"id"`
	Title            string      `json:"title"`
	Body             string      `json:"body"`
	IsPublished      bool        `json:"isPublished"`
	PublishedAt      null.Time   `json:"publishedAt,omitempty"`
	CreatedByAdminID null.String `json:"createdByAdminId,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}
