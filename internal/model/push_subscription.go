package model

import "time"

// PushSubscription holds the information for a browser push subscription.
// MachineIDs lists the machines the subscriber wants new work orders for.
type PushSubscription struct {
	Endpoint   string    `gorm:"primaryKey"`
	P256DH     string    `gorm:"column:p256dh;not null"`
	Auth       string    `gorm:"not null"`
	MachineIDs []string  `gorm:"serializer:json"`
	CreatedAt  time.Time `gorm:"not null"`
}

// WatchesMachine reports whether the subscription covers the given machine.
func (s PushSubscription) WatchesMachine(machineID string) bool {
	for _, id := range s.MachineIDs {
		if id == machineID {
			return true
		}
	}
	return false
}
