package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the append-only 'locations' table.
type LocationModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeviceID             string    `gorm:"type:varchar(255);not null;index:idx_locations_device_timestamp,priority:1"`
	Latitude             float64   `gorm:"type:double precision;not null"`
	Longitude            float64   `gorm:"type:double precision;not null"`
	Accuracy             float64   `gorm:"type:double precision;not null"`
	Altitude             *float64  `gorm:"type:double precision"`
	Speed                *float64  `gorm:"type:double precision"`
	Heading              *float64  `gorm:"type:double precision"`
	Battery              *int      `gorm:"type:smallint;check:chk_locations_battery,battery BETWEEN 0 AND 100"`
	Timestamp            time.Time `gorm:"not null;index:idx_locations_device_timestamp,priority:2,sort:desc;index"`
	IsInGeofence         bool      `gorm:"not null"`
	DistanceFromCenterKm float64   `gorm:"type:double precision;not null"`
	CreatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
