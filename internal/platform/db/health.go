package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const (
	serviceName = "nutriplan"
	pingTimeout = 5 * time.Second
)

// PoolStats is a snapshot of the pgx connection pool.
type PoolStats struct {
	TotalConns    int32  `json:"total_conns"`
	IdleConns     int32  `json:"idle_conns"`
	AcquiredConns int32  `json:"acquired_conns"`
	MaxConns      int32  `json:"max_conns"`
	AcquireCount  int64  `json:"acquire_count"`
	AcquireWait   string `json:"acquire_wait"`
}

// Health is the body served by GET /health/db.
type Health struct {
	Status  string     `json:"status"`
	Service string     `json:"service"`
	Error   string     `json:"error,omitempty"`
	Pool    *PoolStats `json:"pool"`
}

func snapshotPool(pool *pgxpool.Pool) *PoolStats {
	stat := pool.Stat()
	return &PoolStats{
		TotalConns:    stat.TotalConns(),
		IdleConns:     stat.IdleConns(),
		AcquiredConns: stat.AcquiredConns(),
		MaxConns:      stat.MaxConns(),
		AcquireCount:  stat.AcquireCount(),
		AcquireWait:   stat.AcquireDuration().String(),
	}
}

// healthFrom maps a ping result and a pool snapshot to the response
// status code and body. Split out from the handler so the mapping is
// testable without a live pool.
func healthFrom(stats *PoolStats, pingErr error) (int, Health) {
	h := Health{Status: "healthy", Service: serviceName, Pool: stats}
	if pingErr != nil {
		h.Status = "unhealthy"
		h.Error = pingErr.Error()
		return http.StatusServiceUnavailable, h
	}
	return http.StatusOK, h
}

// HealthHandler serves the database health check: a bounded ping plus
// the current pool snapshot.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
		defer cancel()

		code, body := healthFrom(snapshotPool(pool), pool.Ping(ctx))
		return c.JSON(code, body)
	}
}
