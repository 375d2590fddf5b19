package handler

import "time"

type trackingEventRequest struct {
	TrackingNumber string    `json:"tracking_number" validate:"required"`
	Status         string    `json:"status"          validate:"required,max=50"`
	Timestamp      time.Time `json:"timestamp"       validate:"required"`
	Source         string    `json:"source"          validate:"required"`
	Location       string    `json:"location"        validate:"max=200"`
	Notes          string    `json:"notes"           validate:"max=500"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
