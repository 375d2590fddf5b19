package handler

import (
	"math"
	"time"

	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/internal/core/ports"
	"github.com/a4co/transportista-service/pkg/geo"
)

// --- Request → Service input ---

func toCreateInput(req createShipmentRequest) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		OrderID:             req.OrderID,
		CarrierID:           req.CarrierID,
		Origin:              toLocationInput(req.Origin),
		Destination:         toLocationInput(req.Destination),
		WeightKg:            req.WeightKg,
		EstimatedDelivery:   req.EstimatedDelivery,
		SpecialInstructions: req.SpecialInstructions,
	}
}

func toLocationInput(l locationRequest) ports.LocationInput {
	return ports.LocationInput{
		Lat:     l.Lat,
		Lng:     l.Lng,
		Address: l.Address,
		City:    l.City,
		Region:  l.Region,
	}
}

func toUpdateStatusInput(req updateStatusRequest) ports.UpdateStatusInput {
	return ports.UpdateStatusInput{
		Status:   req.Status,
		Location: req.Location,
		Notes:    req.Notes,
	}
}

// --- Service result → HTTP response ---

func toShipmentResponse(s *domain.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:                  s.ID,
		TrackingNumber:      s.TrackingNumber,
		OrderID:             s.OrderID,
		CarrierID:           s.CarrierID,
		CarrierName:         s.CarrierName,
		Status:              string(s.Status),
		Origin:              toLocationResponse(s.Origin),
		Destination:         toLocationResponse(s.Destination),
		CurrentLocation:     toLocationResponse(s.CurrentLocation),
		WeightKg:            s.WeightKg,
		EstimatedDelivery:   s.EstimatedDelivery.UTC(),
		ActualDelivery:      utcPtr(s.ActualDelivery),
		History:             toHistoryResponse(s.History),
		SpecialInstructions: s.SpecialInstructions,
		CreatedAt:           s.CreatedAt.UTC(),
		UpdatedAt:           s.UpdatedAt.UTC(),
		RouteDistanceKm:     routeDistance(s.Origin, s.Destination),
	}
}

func toShipmentList(ss []*domain.Shipment) []shipmentResponse {
	out := make([]shipmentResponse, len(ss))
	for i, s := range ss {
		out[i] = toShipmentResponse(s)
	}
	return out
}

func toTrackingResponse(t *domain.Tracking) trackingResponse {
	return trackingResponse{
		TrackingNumber:    t.TrackingNumber,
		Status:            string(t.Status),
		EstimatedDelivery: t.EstimatedDelivery.UTC(),
		ActualDelivery:    utcPtr(t.ActualDelivery),
		CurrentLocation:   t.CurrentLocation,
		History:           toHistoryResponse(t.History),
		LastUpdate:        t.LastUpdate.UTC(),
	}
}

func toLocationResponse(l domain.Location) locationResponse {
	return locationResponse{
		Lat:     l.Lat,
		Lng:     l.Lng,
		Address: l.Address,
		City:    l.City,
		Region:  l.Region,
	}
}

func toHistoryResponse(entries []domain.HistoryEntry) []historyEntryResponse {
	out := make([]historyEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = historyEntryResponse{
			Status:    string(e.Status),
			Location:  e.Location,
			Timestamp: e.Timestamp.UTC(),
			Notes:     e.Notes,
		}
	}
	return out
}

// routeDistance is nil when a stored coordinate is out of range or the
// result is not a finite number.
func routeDistance(from, to domain.Location) *float64 {
	km, err := geo.Distance(from.Lat, from.Lng, to.Lat, to.Lng)
	if err != nil || math.IsNaN(km) || math.IsInf(km, 0) {
		return nil
	}
	km = math.Round(km*100) / 100
	return &km
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
