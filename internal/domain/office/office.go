package office

import (
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/geo"
)

// DefaultRadiusMeters is the clock-in radius used when none is configured.
const DefaultRadiusMeters = 200

// Coordinate is a GPS position in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Office describes the office location a clock action is checked against:
// a single well-known coordinate, a radius threshold in meters and a set of
// allow-listed network addresses that bypass the distance check.
type Office struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	AllowedIPs   []string
}

// Eligibility reasons.
const (
	ReasonIPAllowlist   = "ip_allowlist"
	ReasonWithinRadius  = "within_radius"
	ReasonOutsideRadius = "outside_radius"
	ReasonNoLocation    = "no_location"
)

// EligibilityResult is the outcome of a clock-action eligibility check.
type EligibilityResult struct {
	Eligible       bool     `json:"eligible"`
	Reason         string   `json:"reason"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}

// CheckEligibility decides whether an attendance action is permitted.
// An allow-listed IP is eligible regardless of distance. Otherwise, if a
// coordinate was supplied, it must be within the office radius (inclusive).
// With no coordinate and no allow-listed IP the action is denied.
func CheckEligibility(o Office, coord *Coordinate, ip string) EligibilityResult {
	for _, allowed := range o.AllowedIPs {
		if ip != "" && ip == allowed {
			return EligibilityResult{Eligible: true, Reason: ReasonIPAllowlist}
		}
	}

	if coord != nil {
		distance := geo.Distance(coord.Latitude, coord.Longitude, o.Latitude, o.Longitude)
		if distance <= o.RadiusMeters {
			return EligibilityResult{Eligible: true, Reason: ReasonWithinRadius, DistanceMeters: &distance}
		}
		return EligibilityResult{Eligible: false, Reason: ReasonOutsideRadius, DistanceMeters: &distance}
	}

	return EligibilityResult{Eligible: false, Reason: ReasonNoLocation}
}
