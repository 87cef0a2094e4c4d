package models

import "time"

// AuditLog records mutating requests for later review.
type AuditLog struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"index;size:64"`
	Method    string `gorm:"size:16"`
	Path      string `gorm:"size:255"`
	Status    int
	IP        string `gorm:"size:64"`
	CreatedAt time.Time
}
