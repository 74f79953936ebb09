// Package event publishes and consumes domain events over Kafka.
package event

import "time"

// UserRegistered is emitted after a successful registration. The payload
// is JSON on the wire.
type UserRegistered struct {
	Email        string    `json:"email"`
	FullName     *string   `json:"full_name,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}
