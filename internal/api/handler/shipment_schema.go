package handler

import "time"

// --- Request types ---

type locationRequest struct {
	Lat     float64 `json:"lat"     validate:"gte=-90,lte=90"`
	Lng     float64 `json:"lng"     validate:"gte=-180,lte=180"`
	Address string  `json:"address" validate:"required,max=200"`
	City    string  `json:"city"    validate:"required,max=100"`
	Region  string  `json:"region"  validate:"max=100"`
}

type createShipmentRequest struct {
	OrderID             string          `json:"order_id"             validate:"required"`
	CarrierID           string          `json:"transportista_id"     validate:"required"`
	Origin              locationRequest `json:"origin"               validate:"required"`
	Destination         locationRequest `json:"destination"          validate:"required"`
	WeightKg            float64         `json:"weight_kg"            validate:"gt=0"`
	EstimatedDelivery   time.Time       `json:"estimated_delivery"   validate:"required"`
	SpecialInstructions string          `json:"special_instructions" validate:"max=500"`
}

type updateStatusRequest struct {
	Status   string `json:"status"   validate:"required,max=50"`
	Location string `json:"location" validate:"max=200"`
	Notes    string `json:"notes"    validate:"max=500"`
}

// --- Response types ---

type locationResponse struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Region  string  `json:"region"`
}

type historyEntryResponse struct {
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

type shipmentResponse struct {
	ID                  string                 `json:"id"`
	TrackingNumber      string                 `json:"tracking_number"`
	OrderID             string                 `json:"order_id"`
	CarrierID           string                 `json:"transportista_id"`
	CarrierName         string                 `json:"transportista_nombre"`
	Status              string                 `json:"status"`
	Origin              locationResponse       `json:"origin"`
	Destination         locationResponse       `json:"destination"`
	CurrentLocation     locationResponse       `json:"current_location"`
	WeightKg            float64                `json:"weight_kg"`
	EstimatedDelivery   time.Time              `json:"estimated_delivery"`
	ActualDelivery      *time.Time             `json:"actual_delivery"`
	History             []historyEntryResponse `json:"history"`
	SpecialInstructions string                 `json:"special_instructions,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
	// RouteDistanceKm is the great-circle distance from origin to destination.
	RouteDistanceKm *float64 `json:"route_distance_km,omitempty"`
}

type trackingResponse struct {
	TrackingNumber    string                 `json:"tracking_number"`
	Status            string                 `json:"status"`
	EstimatedDelivery time.Time              `json:"estimated_delivery"`
	ActualDelivery    *time.Time             `json:"actual_delivery"`
	CurrentLocation   string                 `json:"current_location"`
	History           []historyEntryResponse `json:"history"`
	LastUpdate        time.Time              `json:"last_update"`
}
