package utils

import (
	"context"
	"sync"
	"time"

	"expertly/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus is a point-in-time snapshot of backing-store connectivity,
// served as-is by the health endpoint.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the last recorded snapshot. Before the first
// probe completes it reports everything as down.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func setHealthStatus(status HealthStatus) {
	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

// healthProbeInterval reads HEALTH_CHECK_INTERVAL_SEC, falling back to a
// minute when unset or nonsense.
func healthProbeInterval() time.Duration {
	secs := config.AppConfig.HealthCheckIntervalSec
	if secs <= 0 {
		return time.Minute
	}
	return time.Duration(secs) * time.Second
}

func probeStores(ctx context.Context, redisClients []*redis.Client, mongoClient *mongo.Client) HealthStatus {
	redisHealth := make([]bool, 0, len(redisClients))
	for _, client := range redisClients {
		redisHealth = append(redisHealth, client.Ping(ctx).Err() == nil)
	}
	return HealthStatus{
		Mongo:     mongoClient.Ping(ctx, nil) == nil,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
}

// StartHealthMonitor probes Mongo and each Redis client on the configured
// interval, keeping the snapshot fresh for the health endpoint. Failed
// probes are logged but never interrupt the loop.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	interval := healthProbeInterval()
	go func() {
		logger := GetLogger()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			status := probeStores(ctx, redisClients, mongoClient)
			cancel()

			setHealthStatus(status)

			if !status.Mongo {
				logger.Warn("Mongo health probe failed")
			}
			for i, ok := range status.Redis {
				if !ok {
					logger.Warn("Redis health probe failed", zap.Int("client", i))
				}
			}
		}
	}()
}
