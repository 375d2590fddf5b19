package kafka

import (
	"time"

	"github.com/a4co/transportista-service/internal/core/domain"
)

// StatusChangedMessage is the payload written to the status topic.
type StatusChangedMessage struct {
	ShipmentID     string    `json:"shipment_id"`
	TrackingNumber string    `json:"tracking_number"`
	OrderID        string    `json:"order_id"`
	CarrierID      string    `json:"transportista_id"`
	Status         string    `json:"status"`
	Location       string    `json:"location,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	ChangedAt      time.Time `json:"changed_at"`
}

func newStatusChangedMessage(c domain.StatusChange) StatusChangedMessage {
	return StatusChangedMessage{
		ShipmentID:     c.ShipmentID,
		TrackingNumber: c.TrackingNumber,
		OrderID:        c.OrderID,
		CarrierID:      c.CarrierID,
		Status:         string(c.Status),
		Location:       c.Location,
		Notes:          c.Notes,
		ChangedAt:      c.ChangedAt.UTC(),
	}
}
