package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"
)

// HealthStatus describes database reachability and pool state.
type HealthStatus struct {
	Reachable    bool          `json:"reachable"`
	Latency      time.Duration `json:"latency"`
	OpenConns    int           `json:"open_conns"`
	InUseConns   int           `json:"in_use_conns"`
	IdleConns    int           `json:"idle_conns"`
	ErrorMessage string        `json:"error,omitempty"`
}

// Health pings the database and reports pool statistics.
func Health(ctx context.Context, db *stdsql.DB) (HealthStatus, error) {
	start := time.Now()
	err := db.PingContext(ctx)
	latency := time.Since(start)

	stats := db.Stats()
	status := HealthStatus{
		Reachable:  err == nil,
		Latency:    latency,
		OpenConns:  stats.OpenConnections,
		InUseConns: stats.InUse,
		IdleConns:  stats.Idle,
	}
	if err != nil {
		status.ErrorMessage = err.Error()
		return status, fmt.Errorf("database ping failed: %w", err)
	}
	return status, nil
}
