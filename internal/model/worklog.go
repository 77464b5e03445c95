package model

import "time"

// WorkLog records hours worked on one calendar day for one internship.
// A day has at most one log; saving zero hours deletes the row instead of
// keeping a zero entry.
type WorkLog struct {
	ID           string `gorm:"primaryKey"`
	InternshipID string `gorm:"uniqueIndex:idx_internship_log_date"`
	LogDate      string `gorm:"uniqueIndex:idx_internship_log_date"` // YYYY-MM-DD
	Hours        float64
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
