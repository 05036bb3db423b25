package node_test

import (
	"context"
	"testing"
	"time"

	"github.com/starkstream/node/node"
	"github.com/starkstream/node/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode(t *testing.T) {
	cfg := &node.Config{
		LogLevel:       utils.INFO,
		DatabasePath:   t.TempDir(),
		RPCURL:         "http://localhost:6060",
		GRPCPort:       0,
		HealthInterval: time.Second,
	}

	n, err := node.New(cfg, "1.0.0")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	n.Run(ctx)
}

func TestNewNodeInvalidConfig(t *testing.T) {
	tests := map[string]*node.Config{
		"missing rpc url": {
			HealthInterval: time.Second,
		},
		"malformed rpc url": {
			RPCURL:         "not a url",
			HealthInterval: time.Second,
		},
		"missing health interval": {
			RPCURL: "http://localhost:6060",
		},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := node.New(cfg, "1.0.0")
			assert.Error(t, err)
		})
	}
}
