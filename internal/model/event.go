// internal/model/event.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CustomerCreated = "customer.created"
	CustomerDeleted = "customer.deleted"
)

type CustomerEvent struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	CustomerID int       `json:"customer_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewCustomerEvent(eventType string, customerID int) CustomerEvent {
	return CustomerEvent{
		ID:         uuid.New(),
		Type:       eventType,
		CustomerID: customerID,
		OccurredAt: time.Now().UTC(),
	}
}
