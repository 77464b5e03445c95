package model

import "time"

// Internship is one tracked engagement with an hours target.
// CompletedHours is a derived aggregate: it always equals the sum of hours
// across the internship's work logs and is re-derived after every log write.
type Internship struct {
	ID             string `gorm:"primaryKey"`
	UserID         string `gorm:"index"`
	Company        string
	Position       string
	TotalHours     float64
	CompletedHours float64
	StartDate      string // YYYY-MM-DD
	EndDate        string // YYYY-MM-DD
	CreatedAt      time.Time
	UpdatedAt      time.Time
	WorkLogs       []WorkLog `gorm:"foreignKey:InternshipID;constraint:OnDelete:CASCADE"`
}
