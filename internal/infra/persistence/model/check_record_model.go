package model

import (
	"time"

	"github.com/google/uuid"
)

// CheckRecordModel is the GORM-specific struct for the 'check_records' table.
// It carries no password material.
type CheckRecordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Verdict   string    `gorm:"type:varchar(20);not null;default:''"`
	Source    string    `gorm:"type:varchar(20);not null"`
	Failed    bool      `gorm:"not null;default:false"`
	RequestID string    `gorm:"type:varchar(64);not null;default:''"`
	CheckedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (CheckRecordModel) TableName() string {
	return "check_records"
}
