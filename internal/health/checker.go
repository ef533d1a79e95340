package health

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	StatusHealthy   = "Healthy"
	StatusUnhealthy = "Unhealthy"

	ServiceName    = "ProductCatalog API"
	ServiceVersion = "1.0.0"

	pingTimeout = 3 * time.Second
)

type CheckResult struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

type Report struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Service   string                 `json:"service"`
	Version   string                 `json:"version"`
	Checks    map[string]CheckResult `json:"checks"`
}

func (r Report) Healthy() bool { return r.Status == StatusHealthy }

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Checker probes the dependencies the API cannot serve without.
type Checker struct {
	db  Pinger
	log *logrus.Logger
	now func() time.Time
}

func NewChecker(db Pinger, logger *logrus.Logger) *Checker {
	return &Checker{db: db, log: logger, now: time.Now}
}

// NewGormChecker pings the connection pool behind gdb.
func NewGormChecker(gdb *gorm.DB, logger *logrus.Logger) (*Checker, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	return NewChecker(sqlDB, logger), nil
}

func (c *Checker) Check(ctx context.Context) Report {
	report := Report{
		Status:    StatusHealthy,
		Timestamp: c.now().UTC(),
		Service:   ServiceName,
		Version:   ServiceVersion,
		Checks:    map[string]CheckResult{},
	}

	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	started := time.Now()
	err := c.db.PingContext(pctx)
	result := CheckResult{Status: StatusHealthy, LatencyMs: time.Since(started).Milliseconds()}
	if err != nil {
		c.log.Warnf("Health: database ping failed: %v", err)
		result.Status = StatusUnhealthy
		result.Error = "database unreachable"
		report.Status = StatusUnhealthy
	}
	report.Checks["database"] = result
	return report
}
