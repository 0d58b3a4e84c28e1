package health

import (
	"context"
	"time"

	"centring-backend/internal/directory"
	"centring-backend/internal/models"
)

// RecordLister is the slice of the record store client the checker needs.
type RecordLister interface {
	List(ctx context.Context) ([]*models.TransactionRecord, error)
}

type HealthChecker struct {
	store RecordLister
	dir   directory.Store
}

type HealthStatus struct {
	Status      string          `json:"status"`
	RecordStore DependencyHealth `json:"record_store"`
	Directory   DependencyHealth `json:"directory"`
}

type DependencyHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(store RecordLister, dir directory.Store) *HealthChecker {
	return &HealthChecker{store: store, dir: dir}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	storeHealth := h.checkRecordStore()
	dirHealth := h.checkDirectory()

	status := "healthy"
	if storeHealth.Status != "healthy" || dirHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:      status,
		RecordStore: storeHealth,
		Directory:   dirHealth,
	}
}

func (h *HealthChecker) checkRecordStore() DependencyHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	_, err := h.store.List(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return DependencyHealth{Status: "unhealthy", ResponseTime: responseTime}
	}
	return DependencyHealth{Status: "healthy", ResponseTime: responseTime}
}

func (h *HealthChecker) checkDirectory() DependencyHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	_, err := h.dir.Load(ctx)
	responseTime := time.Since(start).Milliseconds()

	// A corrupt blob still counts as reachable storage; the directory
	// views surface the parse problem themselves.
	if err != nil {
		if _, ok := err.(*directory.ParseError); !ok {
			return DependencyHealth{Status: "unhealthy", ResponseTime: responseTime}
		}
	}
	return DependencyHealth{Status: "healthy", ResponseTime: responseTime}
}
