package main

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/starkstream/node/node"
	"github.com/starkstream/node/utils"
)

// Version is set at build time via ldflags.
var Version string

const greeting = `
     _             _       _
 ___| |_ __ _ _ __| | __  | |_ _ __ ___  __ _ _ __ ___
/ __| __/ _` + "`" + ` | '__| |/ /  / __| '__/ _ \/ _` + "`" + ` | '_ ` + "`" + ` _ \
\__ \ || (_| | |  |   <   \__ \ | |  __/ (_| | | | | | |
|___/\__\__,_|_|  |_|\_\  |___/_|  \___|\__,_|_| |_| |_|

StarkStream is a StarkNet data streaming node written in Go.

`

const (
	configF         = "config"
	logLevelF       = "log-level"
	colourF         = "colour"
	dbPathF         = "db-path"
	rpcURLF         = "rpc-url"
	grpcPortF       = "grpc-port"
	metricsF        = "metrics"
	metricsPortF    = "metrics-port"
	healthIntervalF = "health-interval"

	defaultConfig         = ""
	defaultColour         = true
	defaultDBPath         = ""
	defaultRPCURL         = ""
	defaultGRPCPort       = uint16(7171)
	defaultMetrics        = false
	defaultMetricsPort    = uint16(9090)
	defaultHealthInterval = 5 * time.Second

	configFlagUsage   = "The yaml configuration file."
	logLevelFlagUsage = "Options: debug, info, warn, error."
	colourUsage       = "Uses colour in the logs."
	dbPathUsage       = "Location of the database files."
	rpcURLUsage       = "The StarkNet JSON-RPC endpoint to read the chain from."
	grpcPortUsage     = "The port on which the streaming gRPC server listens."
	metricsUsage      = "Enables the Prometheus metrics server."
	metricsPortUsage  = "The port on which the metrics server listens."
	healthUsage       = "How often the health reporter probes storage."
)

var (
	// StarkStreamNode keeps the built node reachable for tests.
	StarkStreamNode node.StarkStreamNode
	cfgFile         string
)

func NewCmd(newNodeFn node.NewStarkStreamNodeFn) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "starkstream [flags]",
		Short:   "StarkNet data streaming node.",
		Version: Version,
	}

	defaultLogLevel := utils.INFO
	rootCmd.Flags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	rootCmd.Flags().Var(&defaultLogLevel, logLevelF, logLevelFlagUsage)
	rootCmd.Flags().Bool(colourF, defaultColour, colourUsage)
	rootCmd.Flags().String(dbPathF, defaultDBPath, dbPathUsage)
	rootCmd.Flags().String(rpcURLF, defaultRPCURL, rpcURLUsage)
	rootCmd.Flags().Uint16(grpcPortF, defaultGRPCPort, grpcPortUsage)
	rootCmd.Flags().Bool(metricsF, defaultMetrics, metricsUsage)
	rootCmd.Flags().Uint16(metricsPortF, defaultMetricsPort, metricsPortUsage)
	rootCmd.Flags().Duration(healthIntervalF, defaultHealthInterval, healthUsage)

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
		}

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		if _, err := fmt.Fprint(cmd.OutOrStdout(), greeting); err != nil {
			return err
		}

		cfg := new(node.Config)
		if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		))); err != nil {
			return err
		}

		var err error
		StarkStreamNode, err = newNodeFn(cfg, Version)
		if err != nil {
			return err
		}

		StarkStreamNode.Run(cmd.Context())
		return nil
	}

	return rootCmd
}
