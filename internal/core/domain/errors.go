package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateIdentifier     = errors.New("duplicate identifier")
	ErrCarrierNotFound         = errors.New("carrier not found")
	ErrCapacityExceeded        = errors.New("weight exceeds carrier capacity")
	ErrTrackingNotFound        = errors.New("tracking number not found")
	ErrShipmentNotFound        = errors.New("shipment not found")
	ErrDuplicateTrackingNumber = errors.New("tracking number already in use")
	ErrInvalidStatus           = errors.New("invalid shipment status")
)

const (
	FieldRUT   = "rut"
	FieldEmail = "email"
)

// DuplicateIdentifierError reports which business identifier is already taken.
type DuplicateIdentifierError struct {
	Field string
	Value string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("carrier with %s %s already exists", e.Field, e.Value)
}

func (e *DuplicateIdentifierError) Is(target error) bool {
	return target == ErrDuplicateIdentifier
}

// CapacityExceededError carries the rejected weight and the carrier's capacity.
type CapacityExceededError struct {
	WeightKg   float64
	CapacityKg float64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("weight exceeds vehicle capacity (%gkg > %gkg)", e.WeightKg, e.CapacityKg)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
