package model

import (
	"time"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// LastGeofenceInside is NULL until the first fix has been evaluated.
type DeviceModel struct {
	DeviceID           string     `gorm:"type:varchar(255);primaryKey"`
	DeviceName         string     `gorm:"type:text;not null"`
	Manufacturer       string     `gorm:"type:text"`
	Model              string     `gorm:"type:text"`
	OSVersion          string     `gorm:"column:os_version;type:text"`
	RegisteredAt       time.Time  `gorm:"not null"`
	LastSeen           *time.Time `gorm:"index:idx_devices_active_last_seen,priority:2,sort:desc"`
	IsActive           bool       `gorm:"not null;default:true;index:idx_devices_active_last_seen,priority:1"`
	LastGeofenceInside *bool
	LastAlertAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
