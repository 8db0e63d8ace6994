package settings

import (
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/office"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/validator"
)

// ============= Request DTOs =============

// UpdateOfficeRequest replaces the office geofence settings.
type UpdateOfficeRequest struct {
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	RadiusMeters float64  `json:"radius_meters"`
	AllowedIPs   []string `json:"allowed_ips"`
}

func (r UpdateOfficeRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "must be between -180 and 180"})
	}
	if r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{Field: "radius_meters", Message: "must be positive"})
	}
	for _, ip := range r.AllowedIPs {
		if !validator.IsValidIP(ip) {
			errs = append(errs, validator.ValidationError{Field: "allowed_ips", Message: "contains an invalid address: " + ip})
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ============= Response DTOs =============

type OfficeResponse struct {
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	RadiusMeters float64  `json:"radius_meters"`
	AllowedIPs   []string `json:"allowed_ips"`
}

func ToOfficeResponse(o office.Office) OfficeResponse {
	ips := o.AllowedIPs
	if ips == nil {
		ips = []string{}
	}
	return OfficeResponse{
		Latitude:     o.Latitude,
		Longitude:    o.Longitude,
		RadiusMeters: o.RadiusMeters,
		AllowedIPs:   ips,
	}
}
