package models

import "time"

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportPublished ReportStatus = "published"
	ReportRejected  ReportStatus = "rejected"
)

// Report is a project update written by its owner, published by an admin.
type Report struct {
	ID          string       `json:"id"`
	ProjectID   string       `json:"project_id"`
	AuthorID    string       `json:"author_id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Status      ReportStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	PublishedAt *time.Time   `json:"published_at,omitempty"`
}
