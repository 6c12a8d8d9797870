package utils

import (
	"testing"
	"time"

	"expertly/config"
)

func TestHealthProbeIntervalFromConfig(t *testing.T) {
	orig := config.AppConfig.HealthCheckIntervalSec
	defer func() { config.AppConfig.HealthCheckIntervalSec = orig }()

	tests := []struct {
		name string
		secs int
		want time.Duration
	}{
		{name: "configured", secs: 15, want: 15 * time.Second},
		{name: "unset falls back", secs: 0, want: time.Minute},
		{name: "negative falls back", secs: -5, want: time.Minute},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config.AppConfig.HealthCheckIntervalSec = tc.secs
			if got := healthProbeInterval(); got != tc.want {
				t.Fatalf("healthProbeInterval() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHealthStatusSnapshot(t *testing.T) {
	defer setHealthStatus(HealthStatus{})

	if got := GetHealthStatus(); got.Mongo || len(got.Redis) != 0 {
		t.Fatalf("initial snapshot should report everything down, got %+v", got)
	}

	checked := time.Now()
	setHealthStatus(HealthStatus{Mongo: true, Redis: []bool{true, false}, CheckedAt: checked})

	got := GetHealthStatus()
	if !got.Mongo {
		t.Error("expected mongo healthy")
	}
	if len(got.Redis) != 2 || !got.Redis[0] || got.Redis[1] {
		t.Errorf("unexpected redis health %v", got.Redis)
	}
	if !got.CheckedAt.Equal(checked) {
		t.Errorf("CheckedAt = %v, want %v", got.CheckedAt, checked)
	}
}
