package metrics

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewPrometheusService creates a new service for gathering prometheus metrics.
func NewPrometheusService(addr string, log *zap.Logger) *Service {
	return NewService("Prometheus", addr, promhttp.Handler(), log)
}
