package model

import (
	"time"
)

// PushSubscriptionModel is the GORM-specific struct for the 'push_subscriptions' table.
// The browser-issued endpoint URL is the natural key.
type PushSubscriptionModel struct {
	Endpoint  string `gorm:"type:text;primaryKey"`
	P256dh    string `gorm:"column:p256dh;type:text;not null"`
	Auth      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
