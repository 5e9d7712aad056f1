package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Service serves metrics.
type Service struct {
	*http.Server
	log         *zap.Logger
	serviceType string
}

// NewService configures logger and returns a new service instance listening
// on the given address. An empty address disables the service.
func NewService(name string, addr string, handler http.Handler, log *zap.Logger) *Service {
	return &Service{
		Server: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
		log:         log.With(zap.String("service", name)),
		serviceType: name,
	}
}

// Enabled reports whether the service has an address to listen on.
func (ms *Service) Enabled() bool {
	return ms.Addr != ""
}

// Start runs http service with the exposed endpoint on the configured port.
// It blocks until the service is shut down.
func (ms *Service) Start() {
	if !ms.Enabled() {
		ms.log.Info("service hasn't started since it's disabled")
		return
	}
	ms.log.Info("service is running", zap.String("endpoint", ms.Addr))
	err := ms.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		ms.log.Warn("service couldn't start on configured port", zap.Error(err))
	}
}

// ShutDown stops the service.
func (ms *Service) ShutDown() {
	if !ms.Enabled() {
		return
	}
	ms.log.Info("shutting down service", zap.String("endpoint", ms.Addr))
	err := ms.Shutdown(context.Background())
	if err != nil {
		ms.log.Error("can't shut service down", zap.Error(err))
	}
}
