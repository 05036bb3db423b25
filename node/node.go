// Package node wires storage, the chain provider and the stream server into
// one runnable process.
package node

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sourcegraph/conc"
	"github.com/starkstream/node/db"
	"github.com/starkstream/node/db/pebble"
	"github.com/starkstream/node/grpc"
	"github.com/starkstream/node/healer"
	"github.com/starkstream/node/ingestion"
	"github.com/starkstream/node/provider"
	"github.com/starkstream/node/service"
	"github.com/starkstream/node/utils"
)

// StarkStreamNode is the runnable process assembled by New.
type StarkStreamNode interface {
	Run(ctx context.Context)
}

// NewStarkStreamNodeFn lets the CLI swap the node constructor in tests.
type NewStarkStreamNodeFn func(cfg *Config, version string) (StarkStreamNode, error)

// Config is the top-level node configuration.
type Config struct {
	LogLevel utils.LogLevel `mapstructure:"log-level"`
	Colour   bool           `mapstructure:"colour"`

	DatabasePath string `mapstructure:"db-path"`
	RPCURL       string `mapstructure:"rpc-url" validate:"required,url"`
	GRPCPort     uint16 `mapstructure:"grpc-port"`

	Metrics     bool   `mapstructure:"metrics"`
	MetricsPort uint16 `mapstructure:"metrics-port"`

	HealthInterval time.Duration `mapstructure:"health-interval" validate:"required"`
}

type Node struct {
	cfg      *Config
	db       db.KeyValueStore
	provider *provider.JSONRPC

	services []service.Service
	log      utils.Logger

	version string
}

// New validates the config and builds the node. Any error here is a fatal
// configuration error.
func New(cfg *Config, version string) (*Node, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log, err := utils.NewZapLogger(cfg.LogLevel, cfg.Colour)
	if err != nil {
		return nil, err
	}

	if cfg.DatabasePath == "" {
		dirPrefix, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		cfg.DatabasePath = dirPrefix
	}
	database, err := pebble.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open DB: %w", err)
	}
	if cfg.Metrics {
		database.WithListener(makeDBMetrics())
	}

	chain, err := provider.NewJSONRPC(context.Background(), cfg.RPCURL)
	if err != nil {
		return nil, err
	}
	chain.WithLogger(log)
	if cfg.Metrics {
		chain.WithListener(makeProviderMetrics())
	}

	stream := ingestion.NewStreamClient()
	heal := healer.NewClient(log)

	grpcServer := grpc.NewServer(cfg.GRPCPort, version, database, stream, heal, chain, log).
		WithHealthInterval(cfg.HealthInterval)
	if cfg.Metrics {
		grpcServer.WithListener(makeGRPCMetrics())
	}

	services := []service.Service{grpcServer}
	if cfg.Metrics {
		services = append(services, makeMetrics(cfg.MetricsPort))
	}

	return &Node{
		cfg:      cfg,
		db:       database,
		provider: chain,
		services: services,
		log:      log,
		version:  version,
	}, nil
}

// Run starts all services and waits for them to return. A failing service
// cancels the shared context, stopping the others.
func (n *Node) Run(ctx context.Context) {
	defer func() {
		n.provider.Close()
		if closeErr := n.db.Close(); closeErr != nil {
			n.log.Errorw("Error while closing the DB", "err", closeErr)
		}
	}()

	n.log.Infow("Starting node", "version", n.version, "grpc-port", n.cfg.GRPCPort)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wg := conc.NewWaitGroup()
	for _, s := range n.services {
		s := s
		wg.Go(func() {
			if err := s.Run(ctx); err != nil {
				n.log.Errorw("Service error", "name", reflect.TypeOf(s), "err", err)
				cancel()
			}
		})
	}
	wg.Wait()
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find user home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "starkstream"), nil
}
