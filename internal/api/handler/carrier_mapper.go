package handler

import (
	"github.com/a4co/transportista-service/internal/core/domain"
	"github.com/a4co/transportista-service/internal/core/ports"
)

func toRegisterInput(req createCarrierRequest) ports.RegisterCarrierInput {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return ports.RegisterCarrierInput{
		Name:        req.Name,
		RUT:         req.RUT,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		VehicleType: req.VehicleType,
		CapacityKg:  req.CapacityKg,
		Active:      active,
	}
}

func toCarrierResponse(c *domain.Carrier) carrierResponse {
	return carrierResponse{
		ID:          c.ID,
		Name:        c.Name,
		RUT:         c.RUT,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		VehicleType: string(c.VehicleType),
		CapacityKg:  c.CapacityKg,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt.UTC(),
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCarrierList(cs []*domain.Carrier) []carrierResponse {
	out := make([]carrierResponse, len(cs))
	for i, c := range cs {
		out[i] = toCarrierResponse(c)
	}
	return out
}
