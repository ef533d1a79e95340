package grpcserver

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/health"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name reported to grpc.health.v1 clients next to the
// empty overall service.
const ServiceName = "productcatalog.Catalog"

const DefaultRefreshInterval = 15 * time.Second

type Checker interface {
	Check(ctx context.Context) health.Report
}

// Server exposes the gRPC health protocol backed by the database check.
type Server struct {
	grpc     *grpc.Server
	health   *grpchealth.Server
	checker  Checker
	interval time.Duration
	log      *logrus.Logger
}

func New(checker Checker, interval time.Duration, logger *logrus.Logger) *Server {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	s := &Server{
		grpc:     grpc.NewServer(),
		health:   grpchealth.NewServer(),
		checker:  checker,
		interval: interval,
		log:      logger,
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	reflection.Register(s.grpc)
	logger.Info("gRPC health and reflection services registered")
	return s
}

// Refresh runs one check and publishes the result.
func (s *Server) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if !s.checker.Check(ctx).Healthy() {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	return status
}

// Watch refreshes the serving status until ctx is done.
func (s *Server) Watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	last := s.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if status := s.Refresh(ctx); status != last {
				s.log.Warnf("gRPC health status changed from %s to %s", last, status)
				last = status
			}
		}
	}
}

// Serve blocks until the listener fails or Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Infof("gRPC server listening on %s", lis.Addr())
	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
	s.log.Info("gRPC server gracefully stopped.")
}
