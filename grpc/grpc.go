// Package grpc runs the node's single listener: the streaming service, the
// standard health service and server reflection share one TCP port.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/starkstream/node/db"
	"github.com/starkstream/node/grpc/gen"
	"github.com/starkstream/node/healer"
	"github.com/starkstream/node/ingestion"
	"github.com/starkstream/node/provider"
	"github.com/starkstream/node/utils"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

var (
	// ErrTransport wraps failures to set up or serve the listener.
	ErrTransport = errors.New("transport error")
	// ErrTask wraps a background task that failed to run to completion.
	ErrTask = errors.New("task failed")
)

type Server struct {
	port           uint16
	version        string
	db             db.KeyValueStore
	stream         *ingestion.StreamClient
	healer         *healer.Client
	provider       provider.Provider
	listener       EventListener
	healthInterval time.Duration
	log            utils.SimpleLogger
}

func NewServer(port uint16, version string, database db.KeyValueStore, stream *ingestion.StreamClient,
	heal *healer.Client, chain provider.Provider, log utils.SimpleLogger,
) *Server {
	return &Server{
		port:           port,
		version:        version,
		db:             database,
		stream:         stream,
		healer:         heal,
		provider:       chain,
		listener:       &SelectiveListener{},
		healthInterval: defaultHealthInterval,
		log:            log,
	}
}

func (s *Server) WithListener(listener EventListener) *Server {
	s.listener = listener
	return s
}

func (s *Server) WithHealthInterval(interval time.Duration) *Server {
	s.healthInterval = interval
	return s
}

// Run serves until ctx is cancelled. Shutdown is ordered: the listener stops
// accepting and drains in-flight streams first, the health reporter is
// stopped and joined only after Serve returns.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.unaryInterceptor),
		grpc.ChainStreamInterceptor(s.streamInterceptor),
	)
	healthSrv := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcSrv, healthSrv)
	gen.RegisterNodeServer(grpcSrv, nodeService{
		db:       s.db,
		stream:   s.stream,
		healer:   s.healer,
		provider: s.provider,
		version:  s.version,
		log:      s.log,
		runCtx:   ctx,
	})
	reflection.Register(grpcSrv)

	reporterCtx, stopReporter := context.WithCancel(context.Background())
	defer stopReporter()

	reporter := &healthReporter{
		health:   healthSrv,
		db:       s.db,
		interval: s.healthInterval,
		log:      s.log,
	}
	var tasks errgroup.Group
	tasks.Go(func() error {
		return reporter.run(reporterCtx)
	})

	go func() {
		<-ctx.Done()
		s.log.Infow("Draining gRPC connections")
		grpcSrv.GracefulStop()
	}()

	s.log.Infow("gRPC server listening", "addr", lis.Addr())
	err = grpcSrv.Serve(lis)

	stopReporter()
	if joinErr := tasks.Wait(); joinErr != nil {
		return fmt.Errorf("%w: %v", ErrTask, joinErr)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return nil
}

func (s *Server) unaryInterceptor(ctx context.Context, req any,
	info *grpc.UnaryServerInfo, handler grpc.UnaryHandler,
) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.listener.OnRPC(info.FullMethod, time.Since(start), err)
	return resp, err
}

func (s *Server) streamInterceptor(srv any, ss grpc.ServerStream,
	info *grpc.StreamServerInfo, handler grpc.StreamHandler,
) error {
	start := time.Now()
	err := handler(srv, ss)
	s.listener.OnRPC(info.FullMethod, time.Since(start), err)
	return err
}
