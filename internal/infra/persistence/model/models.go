// Package model contains the GORM persistence models.
package model

// All returns every persistence model, in migration order.
func All() []any {
	return []any{
		&DeviceModel{},
		&LocationModel{},
		&AlertModel{},
		&PushSubscriptionModel{},
	}
}
