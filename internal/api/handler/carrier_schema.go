package handler

import (
	"strings"
	"time"
)

type createCarrierRequest struct {
	Name        string  `json:"nombre"        validate:"required,min=2,max=100"`
	RUT         string  `json:"rut"           validate:"required,rut"`
	Phone       string  `json:"telefono"      validate:"required,phone"`
	Email       string  `json:"email"         validate:"required,email"`
	Address     string  `json:"direccion"     validate:"required,min=10,max=200"`
	VehicleType string  `json:"tipo_vehiculo" validate:"required,vehicle_type"`
	CapacityKg  float64 `json:"capacidad_kg"  validate:"gt=0,lte=50000"`
	Active      *bool   `json:"activo"`
}

// normalize puts the request in canonical form before validation.
func (r *createCarrierRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.RUT = strings.ToUpper(strings.TrimSpace(r.RUT))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Address = strings.TrimSpace(r.Address)
	r.VehicleType = strings.ToLower(strings.TrimSpace(r.VehicleType))
	r.Phone = normalizePhone(r.Phone)
}

// normalizePhone keeps the digits and a leading plus sign.
func normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			// Unknown characters are kept so validation rejects them.
			b.WriteRune(r)
		}
	}
	return b.String()
}

type carrierResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"nombre"`
	RUT         string     `json:"rut"`
	Phone       string     `json:"telefono"`
	Email       string     `json:"email"`
	Address     string     `json:"direccion"`
	VehicleType string     `json:"tipo_vehiculo"`
	CapacityKg  float64    `json:"capacidad_kg"`
	Active      bool       `json:"activo"`
	CreatedAt   time.Time  `json:"fecha_creacion"`
	UpdatedAt   *time.Time `json:"fecha_actualizacion"`
}
