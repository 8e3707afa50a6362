package entity

import (
	"time"
)

// PushSubscription is a browser push endpoint with its encryption keys.
type PushSubscription struct {
	Endpoint  string               `json:"endpoint"`
	Keys      PushSubscriptionKeys `json:"keys"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// PushSubscriptionKeys holds the client keys used to encrypt push payloads.
type PushSubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// PushNotification is the payload shown by the browser service worker.
type PushNotification struct {
	Title string               `json:"title"`
	Body  string               `json:"body"`
	Data  PushNotificationData `json:"data"`
}

// PushNotificationData routes a notification click back to the app.
type PushNotificationData struct {
	DeviceID string `json:"deviceId"`
}
