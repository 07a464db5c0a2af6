// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/opinion-board/internal/core"
	"github.com/carterperez-dev/opinion-board/internal/opinion"
)

type Handler struct {
	driver       string
	dbStats      func() sql.DBStats
	dbPing       func(ctx context.Context) error
	countUsers   func(ctx context.Context) (int, error)
	opinionStats func(ctx context.Context) (opinion.Stats, error)
}

type HandlerConfig struct {
	Driver       string
	DBStats      func() sql.DBStats
	DBPing       func(ctx context.Context) error
	CountUsers   func(ctx context.Context) (int, error)
	OpinionStats func(ctx context.Context) (opinion.Stats, error)
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		driver:       cfg.Driver,
		dbStats:      cfg.DBStats,
		dbPing:       cfg.DBPing,
		countUsers:   cfg.CountUsers,
		opinionStats: cfg.OpinionStats,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	adminOnly func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(adminOnly)

		r.Get("/admin/stats", h.GetSystemStats)
		r.Get("/admin/stats/db", h.GetDatabaseStats)
		r.Get("/admin/stats/runtime", h.GetRuntimeStats)
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := SystemStatsResponse{
		Database: h.databaseStatus(ctx),
		Runtime:  readRuntimeStats(),
	}

	if h.countUsers != nil {
		users, err := h.countUsers(ctx)
		if err != nil {
			core.InternalServerError(w, err)
			return
		}
		response.TotalUsers = users
	}

	if h.opinionStats != nil {
		stats, err := h.opinionStats(ctx)
		if err != nil {
			core.InternalServerError(w, err)
			return
		}
		response.TotalOpinions = stats.Opinions
		response.TotalVotes = stats.Votes
	}

	core.OK(w, response)
}

func (h *Handler) GetDatabaseStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.databaseStatus(r.Context()))
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, readRuntimeStats())
}

func (h *Handler) databaseStatus(ctx context.Context) DatabaseStatus {
	status := DatabaseStatus{
		Driver:  h.driver,
		Healthy: true,
		Stats:   h.getDBStats(),
	}

	if h.dbPing != nil {
		if err := h.dbPing(ctx); err != nil {
			status.Healthy = false
		}
	}

	return status
}

func (h *Handler) getDBStats() *DBPoolStats {
	if h.dbStats == nil {
		return nil
	}

	stats := h.dbStats()
	return &DBPoolStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration.String(),
	}
}

func readRuntimeStats() RuntimeStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
	}
}

type SystemStatsResponse struct {
	TotalUsers    int            `json:"total_users"`
	TotalOpinions int            `json:"total_opinions"`
	TotalVotes    int64          `json:"total_votes"`
	Database      DatabaseStatus `json:"database"`
	Runtime       RuntimeStats   `json:"runtime"`
}

type DatabaseStatus struct {
	Driver  string       `json:"driver"`
	Healthy bool         `json:"healthy"`
	Stats   *DBPoolStats `json:"stats,omitempty"`
}

type DBPoolStats struct {
	MaxOpenConnections int    `json:"max_open_connections"`
	OpenConnections    int    `json:"open_connections"`
	InUse              int    `json:"in_use"`
	Idle               int    `json:"idle"`
	WaitCount          int64  `json:"wait_count"`
	WaitDuration       string `json:"wait_duration"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
}
