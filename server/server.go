package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"runner-game/game"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const pushInterval = 100 * time.Millisecond

// Source is whatever publishes the latest engine snapshot.
type Source interface {
	Snapshot() game.Snapshot
}

// Server exposes the running game to spectators over HTTP and websocket and
// reports liveness over the gRPC health protocol.
type Server struct {
	src Source

	httpServer *http.Server
	grpcServer *grpc.Server
	health     *health.Server

	httpListener net.Listener
	grpcListener net.Listener
}

func New(src Source) *Server {
	s := &Server{
		src:        src,
		grpcServer: grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler())),
		health:     health.NewServer(),
	}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	grpc_health_v1.RegisterHealthServer(s.grpcServer, s.health)
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /state", s.stateHandler)
	mux.HandleFunc("GET /ws", s.websocketHandler)
	return mux
}

func (s *Server) stateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.src.Snapshot()); err != nil {
		log.WithError(err).Warn("Failed to write state")
	}
}

// Start listens on both addresses and serves in the background.
func (s *Server) Start(httpAddr, grpcAddr string) error {
	hl, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return err
	}
	gl, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		hl.Close()
		return err
	}
	s.httpListener, s.grpcListener = hl, gl

	s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	go func() {
		if err := s.httpServer.Serve(hl); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Spectator server stopped")
		}
	}()
	go func() {
		if err := s.grpcServer.Serve(gl); err != nil {
			log.WithError(err).Error("Health server stopped")
		}
	}()

	log.WithFields(log.Fields{
		"http": hl.Addr().String(),
		"grpc": gl.Addr().String(),
	}).Info("Spectator server listening")
	return nil
}

func (s *Server) HTTPAddr() string {
	if s.httpListener == nil {
		return ""
	}
	return s.httpListener.Addr().String()
}

func (s *Server) GRPCAddr() string {
	if s.grpcListener == nil {
		return ""
	}
	return s.grpcListener.Addr().String()
}

func (s *Server) Shutdown(ctx context.Context) {
	s.health.Shutdown()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("Failed to shut down spectator server")
	}

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		s.grpcServer.Stop()
	}
}
