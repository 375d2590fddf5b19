package domain

import (
	"strings"
	"time"
)

// VehicleType is the kind of vehicle a carrier operates.
type VehicleType string

const (
	VehicleTruck      VehicleType = "camion"
	VehicleVan        VehicleType = "furgon"
	VehicleMotorcycle VehicleType = "motocicleta"
	VehicleBicycle    VehicleType = "bicicleta"
)

// MaxCapacityKg is the upper bound accepted for a carrier's load capacity.
const MaxCapacityKg = 50000

var vehicleTypes = map[VehicleType]struct{}{
	VehicleTruck:      {},
	VehicleVan:        {},
	VehicleMotorcycle: {},
	VehicleBicycle:    {},
}

// Valid reports whether v is one of the supported vehicle types.
func (v VehicleType) Valid() bool {
	_, ok := vehicleTypes[v]
	return ok
}

// Carrier ("transportista") is a registered transport provider.
type Carrier struct {
	ID          string      `json:"id" bson:"_id"`
	Name        string      `json:"nombre" bson:"nombre"`
	RUT         string      `json:"rut" bson:"rut"`
	Phone       string      `json:"telefono" bson:"telefono"`
	Email       string      `json:"email" bson:"email"`
	Address     string      `json:"direccion" bson:"direccion"`
	VehicleType VehicleType `json:"tipo_vehiculo" bson:"tipo_vehiculo"`
	CapacityKg  float64     `json:"capacidad_kg" bson:"capacidad_kg"`
	Active      bool        `json:"activo" bson:"activo"`
	CreatedAt   time.Time   `json:"fecha_creacion" bson:"fecha_creacion"`
	// UpdatedAt is never set by the current operations.
	UpdatedAt *time.Time `json:"fecha_actualizacion" bson:"fecha_actualizacion"`
}

// Clone returns a copy that shares no mutable state with c.
func (c *Carrier) Clone() *Carrier {
	out := *c
	if c.UpdatedAt != nil {
		t := *c.UpdatedAt
		out.UpdatedAt = &t
	}
	return &out
}

// NormalizeRUT returns the canonical upper-case form of a RUT.
func NormalizeRUT(rut string) string {
	return strings.ToUpper(strings.TrimSpace(rut))
}

// NormalizeEmail returns the canonical lower-case form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
