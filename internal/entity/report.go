package entity

import "time"

type ReportStatus string

const (
	ReportStatusPending       ReportStatus = "pending"
	ReportStatusInvestigating ReportStatus = "investigating"
	ReportStatusResolved      ReportStatus = "resolved"
	ReportStatusDismissed     ReportStatus = "dismissed"
)

type ReportType string

const (
	ReportTypeListing ReportType = "listing"
	ReportTypeUser    ReportType = "user"
)

type ReportPriority string

const (
	PriorityLow    ReportPriority = "low"
	PriorityMedium ReportPriority = "medium"
	PriorityHigh   ReportPriority = "high"
	PriorityUrgent ReportPriority = "urgent"
)

// Report is a moderation case filed against a listing or a user. All
// the *ID fields are weak references into other stores. ReportedItemID
// is set only for listing reports. Resolution is non-empty exactly when
// Status is resolved.
type Report struct {
	ID             string
	Type           ReportType
	ReportedItemID string
	ReportedUserID string
	ReporterID     string
	Reason         string
	Description    string
	Evidence       []string
	Priority       ReportPriority
	Status         ReportStatus
	Resolution     string
	CreatedAt      time.Time
}
