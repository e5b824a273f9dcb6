package entity

import "time"

// BagUsageStatus compares planned and consumed bags for a project.
type BagUsageStatus struct {
	Plan      int `json:"plan"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
	Overrun   int `json:"overrun"`
}

// BagReport is one reported installation record.
type BagReport struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"projectId"`
	Bags       int       `json:"bags"`
	Note       string    `json:"note,omitempty"`
	ReportedAt time.Time `json:"reportedAt"`
}
