package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertModel is the GORM-specific struct for the 'alerts' table.
type AlertModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeviceID             string    `gorm:"type:varchar(255);not null;index"`
	DeviceName           string    `gorm:"type:text;not null"`
	Latitude             float64   `gorm:"type:double precision;not null"`
	Longitude            float64   `gorm:"type:double precision;not null"`
	DistanceFromCenterKm float64   `gorm:"type:double precision;not null"`
	Timestamp            time.Time `gorm:"not null;index:idx_alerts_timestamp,sort:desc"`
	EmailSent            bool      `gorm:"not null;default:false"`
	PushSent             bool      `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}
