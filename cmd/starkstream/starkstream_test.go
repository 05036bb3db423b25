package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	starkstream "github.com/starkstream/node/cmd/starkstream"
	"github.com/starkstream/node/node"
	"github.com/starkstream/node/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spyNode struct {
	sync.RWMutex
	cfg   *node.Config
	calls []string
}

func newSpyNode(cfg *node.Config, _ string) (node.StarkStreamNode, error) {
	return &spyNode{cfg: cfg}, nil
}

func (s *spyNode) Run(ctx context.Context) {
	s.Lock()
	s.calls = append(s.calls, "run")
	s.Unlock()
}

func TestNewCmd(t *testing.T) {
	t.Run("greeting and run", func(t *testing.T) {
		b := new(bytes.Buffer)

		cmd := starkstream.NewCmd(newSpyNode)
		cmd.SetOut(b)
		require.NoError(t, cmd.ExecuteContext(context.Background()))

		assert.Contains(t, b.String(), "StarkStream is a StarkNet data streaming node")

		n, ok := starkstream.StarkStreamNode.(*spyNode)
		require.True(t, ok)
		assert.Equal(t, []string{"run"}, n.calls)
	})

	t.Run("config precedence", func(t *testing.T) {
		// Only a few combinations are checked for sanity; viper owns the
		// precedence rules.
		tests := map[string]struct {
			cfgFileContents string
			inputArgs       []string
			expectedConfig  *node.Config
		}{
			"default config with no flags": {
				inputArgs: []string{},
				expectedConfig: &node.Config{
					LogLevel:       utils.INFO,
					Colour:         true,
					GRPCPort:       7171,
					MetricsPort:    9090,
					HealthInterval: 5 * time.Second,
				},
			},
			"config file overrides defaults": {
				cfgFileContents: `rpc-url: http://localhost:6060
log-level: warn
grpc-port: 4242
health-interval: 10s
`,
				inputArgs: []string{},
				expectedConfig: &node.Config{
					LogLevel:       utils.WARN,
					Colour:         true,
					RPCURL:         "http://localhost:6060",
					GRPCPort:       4242,
					MetricsPort:    9090,
					HealthInterval: 10 * time.Second,
				},
			},
			"flags override config file": {
				cfgFileContents: `grpc-port: 4242
`,
				inputArgs: []string{"--grpc-port", "5353", "--rpc-url", "http://localhost:6060", "--metrics"},
				expectedConfig: &node.Config{
					LogLevel:       utils.INFO,
					Colour:         true,
					RPCURL:         "http://localhost:6060",
					GRPCPort:       5353,
					Metrics:        true,
					MetricsPort:    9090,
					HealthInterval: 5 * time.Second,
				},
			},
		}

		for name, tc := range tests {
			t.Run(name, func(t *testing.T) {
				args := tc.inputArgs
				if tc.cfgFileContents != "" {
					cfgPath := filepath.Join(t.TempDir(), "config.yaml")
					require.NoError(t, os.WriteFile(cfgPath, []byte(tc.cfgFileContents), 0o600))
					args = append(args, "--config", cfgPath)
				} else {
					// The config flag is bound to a package-level variable and
					// survives between commands.
					args = append(args, "--config", "")
				}

				cmd := starkstream.NewCmd(newSpyNode)
				cmd.SetOut(new(bytes.Buffer))
				cmd.SetArgs(args)
				require.NoError(t, cmd.ExecuteContext(context.Background()))

				n, ok := starkstream.StarkStreamNode.(*spyNode)
				require.True(t, ok)
				assert.Equal(t, tc.expectedConfig, n.cfg)
			})
		}
	})
}
