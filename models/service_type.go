package models

import "time"

// Service type tags. Per-session types (30 minutes / 1 hour) require explicit
// completion by the expert; fixed-duration types (1 week / 1 month) carry an
// auto-completion date and are closed by the expiry sweep.
const (
	ServiceType30Min  = "30_min"
	ServiceType1Hour  = "1_hour"
	ServiceType1Week  = "1_week"
	ServiceType1Month = "1_month"
)

// ValidServiceType reports whether t is one of the known service type tags.
func ValidServiceType(t string) bool {
	switch t {
	case ServiceType30Min, ServiceType1Hour, ServiceType1Week, ServiceType1Month:
		return true
	}
	return false
}

// AutoCompletionAfter returns the fixed session duration implied by the
// service type. ok is false for per-session types, which never carry an
// auto-completion date.
func AutoCompletionAfter(serviceType string) (d time.Duration, ok bool) {
	switch serviceType {
	case ServiceType1Week:
		return 7 * 24 * time.Hour, true
	case ServiceType1Month:
		return 30 * 24 * time.Hour, true
	}
	return 0, false
}
