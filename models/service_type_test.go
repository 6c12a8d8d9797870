package models

import (
	"testing"
	"time"
)

func TestAutoCompletionAfter(t *testing.T) {
	tests := []struct {
		serviceType string
		want        time.Duration
		wantFixed   bool
	}{
		{ServiceType1Week, 7 * 24 * time.Hour, true},
		{ServiceType1Month, 30 * 24 * time.Hour, true},
		{ServiceType30Min, 0, false},
		{ServiceType1Hour, 0, false},
		{"unknown", 0, false},
	}

	for _, tt := range tests {
		d, fixed := AutoCompletionAfter(tt.serviceType)
		if d != tt.want || fixed != tt.wantFixed {
			t.Errorf("AutoCompletionAfter(%q) = (%v, %v), want (%v, %v)",
				tt.serviceType, d, fixed, tt.want, tt.wantFixed)
		}
	}
}

func TestValidServiceType(t *testing.T) {
	for _, valid := range []string{ServiceType30Min, ServiceType1Hour, ServiceType1Week, ServiceType1Month} {
		if !ValidServiceType(valid) {
			t.Errorf("ValidServiceType(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "2_weeks", "1 week"} {
		if ValidServiceType(invalid) {
			t.Errorf("ValidServiceType(%q) = true, want false", invalid)
		}
	}
}
