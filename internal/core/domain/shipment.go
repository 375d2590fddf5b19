package domain

import (
	"time"
)

// ShipmentStatus is the label of a shipment's current state. The engine
// treats it as an open string; the constants below are the vocabulary used
// by clients and by the optional strict mode.
type ShipmentStatus string

const (
	StatusPending        ShipmentStatus = "pending"
	StatusInTransit      ShipmentStatus = "in_transit"
	StatusOutForDelivery ShipmentStatus = "out_for_delivery"
	StatusDelivered      ShipmentStatus = "delivered"
	StatusFailedDelivery ShipmentStatus = "failed_delivery"
	StatusReturned       ShipmentStatus = "returned"
	StatusCancelled      ShipmentStatus = "cancelled"
)

var knownStatuses = map[ShipmentStatus]struct{}{
	StatusPending:        {},
	StatusInTransit:      {},
	StatusOutForDelivery: {},
	StatusDelivered:      {},
	StatusFailedDelivery: {},
	StatusReturned:       {},
	StatusCancelled:      {},
}

// KnownStatus reports whether s belongs to the closed status vocabulary.
func KnownStatus(s string) bool {
	_, ok := knownStatuses[ShipmentStatus(s)]
	return ok
}

// TrackingPrefix starts every generated tracking number.
const TrackingPrefix = "TR"

// InitialHistoryNote is attached to the history entry seeded at creation.
const InitialHistoryNote = "Envío creado y asignado a transportista"

// Location is a geographic point with its postal description.
type Location struct {
	Lat     float64 `json:"lat" bson:"lat"`
	Lng     float64 `json:"lng" bson:"lng"`
	Address string  `json:"address" bson:"address"`
	City    string  `json:"city" bson:"city"`
	Region  string  `json:"region" bson:"region"`
}

// HistoryEntry is one append to a shipment's status timeline.
type HistoryEntry struct {
	Status    ShipmentStatus `json:"status" bson:"status"`
	Location  string         `json:"location" bson:"location"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
	Notes     string         `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Shipment is a consignment assigned to a carrier.
type Shipment struct {
	ID                  string         `json:"id" bson:"_id"`
	TrackingNumber      string         `json:"tracking_number" bson:"tracking_number"`
	OrderID             string         `json:"order_id" bson:"order_id"`
	CarrierID           string         `json:"transportista_id" bson:"transportista_id"`
	CarrierName         string         `json:"transportista_nombre" bson:"transportista_nombre"`
	Status              ShipmentStatus `json:"status" bson:"status"`
	Origin              Location       `json:"origin" bson:"origin"`
	Destination         Location       `json:"destination" bson:"destination"`
	CurrentLocation     Location       `json:"current_location" bson:"current_location"`
	WeightKg            float64        `json:"weight_kg" bson:"weight_kg"`
	EstimatedDelivery   time.Time      `json:"estimated_delivery" bson:"estimated_delivery"`
	ActualDelivery      *time.Time     `json:"actual_delivery" bson:"actual_delivery"`
	History             []HistoryEntry `json:"history" bson:"history"`
	SpecialInstructions string         `json:"special_instructions,omitempty" bson:"special_instructions,omitempty"`
	CreatedAt           time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" bson:"updated_at"`
}

// ApplyStatus records a status transition. History is append-only and a
// "delivered" status stamps ActualDelivery every time it is applied.
func (s *Shipment) ApplyStatus(entry HistoryEntry) {
	s.Status = entry.Status
	s.UpdatedAt = entry.Timestamp
	s.History = append(s.History, entry)
	if entry.Status == StatusDelivered {
		t := entry.Timestamp
		s.ActualDelivery = &t
	}
}

// Tracking projects the public tracking view of the shipment.
func (s *Shipment) Tracking() *Tracking {
	history := make([]HistoryEntry, len(s.History))
	copy(history, s.History)

	return &Tracking{
		TrackingNumber:    s.TrackingNumber,
		Status:            s.Status,
		EstimatedDelivery: s.EstimatedDelivery,
		ActualDelivery:    copyTime(s.ActualDelivery),
		CurrentLocation:   s.CurrentLocation.Address,
		History:           history,
		LastUpdate:        s.UpdatedAt,
	}
}

// Clone returns a deep copy of s.
func (s *Shipment) Clone() *Shipment {
	out := *s
	out.ActualDelivery = copyTime(s.ActualDelivery)
	out.History = make([]HistoryEntry, len(s.History))
	copy(out.History, s.History)
	return &out
}

// Tracking is the public projection resolved from a tracking number.
type Tracking struct {
	TrackingNumber    string         `json:"tracking_number"`
	Status            ShipmentStatus `json:"status"`
	EstimatedDelivery time.Time      `json:"estimated_delivery"`
	ActualDelivery    *time.Time     `json:"actual_delivery"`
	CurrentLocation   string         `json:"current_location"`
	History           []HistoryEntry `json:"history"`
	LastUpdate        time.Time      `json:"last_update"`
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
