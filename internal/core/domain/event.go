package domain

import "time"

// StatusChange is published after a shipment's status has been updated.
type StatusChange struct {
	ShipmentID     string
	TrackingNumber string
	OrderID        string
	CarrierID      string
	Status         ShipmentStatus
	Location       string
	Notes          string
	ChangedAt      time.Time
}

// NewStatusChange builds the change notification for the last history entry of s.
func NewStatusChange(s *Shipment) StatusChange {
	last := s.History[len(s.History)-1]
	return StatusChange{
		ShipmentID:     s.ID,
		TrackingNumber: s.TrackingNumber,
		OrderID:        s.OrderID,
		CarrierID:      s.CarrierID,
		Status:         last.Status,
		Location:       last.Location,
		Notes:          last.Notes,
		ChangedAt:      last.Timestamp,
	}
}
