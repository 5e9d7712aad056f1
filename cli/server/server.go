package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tommo-L/neo-node/cli/cmdargs"
	"github.com/Tommo-L/neo-node/cli/options"
	"github.com/Tommo-L/neo-node/pkg/config"
	"github.com/Tommo-L/neo-node/pkg/core/storage"
	"github.com/Tommo-L/neo-node/pkg/services/metrics"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const maskedPassword = "******"

// NewCommands returns 'node' and 'config' commands.
func NewCommands() []cli.Command {
	var cfgFlags = []cli.Flag{options.ConfigFile}
	cfgFlags = append(cfgFlags, options.Network...)

	var nodeFlags = []cli.Flag{
		options.Debug,
		cli.StringFlag{
			Name:  "prometheus",
			Usage: "address to serve Prometheus metrics on (disabled if empty)",
		},
		cli.StringFlag{
			Name:  "pprof",
			Usage: "address to serve pprof profiles on (disabled if empty)",
		},
	}
	nodeFlags = append(nodeFlags, cfgFlags...)
	return []cli.Command{
		{
			Name:      "node",
			Usage:     "Start a Neo node",
			UsageText: "neo-node node [--config-file file] [-p/-m/-t] [-d] [--prometheus addr] [--pprof addr]",
			Action:    startServer,
			Flags:     nodeFlags,
		},
		{
			Name:      "config",
			Usage:     "Print resolved node settings",
			UsageText: "neo-node config [--config-file file] [-p/-m/-t]",
			Action:    dumpConfig,
			Flags:     cfgFlags,
		},
	}
}

func dumpConfig(ctx *cli.Context) error {
	if err := cmdargs.EnsureNone(ctx); err != nil {
		return err
	}
	cfg, err := options.GetSettingsFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if cfg.UnlockWallet.Password != "" {
		cfg.UnlockWallet.Password = maskedPassword
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to marshal settings: %w", err), 1)
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}

// newGraceContext returns a context that is canceled on the first interrupt
// or termination signal.
func newGraceContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func startServer(ctx *cli.Context) error {
	if err := cmdargs.EnsureNone(ctx); err != nil {
		return err
	}
	cfg, err := options.GetSettingsFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log, _, err := options.HandleLoggingParams(ctx.Bool("debug"), cfg.Logger)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()
	undoGlobals := zap.ReplaceGlobals(log)
	defer undoGlobals()

	grace, cancel := newGraceContext()
	defer cancel()

	return runNode(grace, cfg, log, ctx.String("prometheus"), ctx.String("pprof"))
}

// runNode opens node storage and services described by cfg and keeps them
// running until ctx is done.
func runNode(ctx context.Context, cfg config.Settings, log *zap.Logger, promAddr, pprofAddr string) (err error) {
	store, err := storage.NewStore(cfg.Storage.Engine, cfg.Storage.Path)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("could not initialize storage: %w", err), 1)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Error("failed to close the DB", zap.Error(closeErr))
			err = errors.Join(err, closeErr)
		}
	}()

	prometheus := metrics.NewPrometheusService(promAddr, log)
	pprof := metrics.NewPprofService(pprofAddr, log)
	go prometheus.Start()
	go pprof.Start()

	log.Info("node started",
		zap.Stringer("network", config.ProtocolMagic()),
		zap.String("storage", cfg.Storage.Engine),
		zap.String("path", cfg.Storage.Path),
		zap.Uint16("port", cfg.P2P.Port),
		zap.Uint16("ws_port", cfg.P2P.WsPort),
		zap.Int("min_desired_connections", cfg.P2P.MinDesiredConnections),
		zap.Int("max_connections", cfg.P2P.MaxConnections),
		zap.Int("max_connections_per_address", cfg.P2P.MaxConnectionsPerAddress))
	if cfg.UnlockWallet.IsActive {
		log.Info("wallet auto-unlock is configured",
			zap.String("wallet", cfg.UnlockWallet.Path),
			zap.Bool("start_consensus", cfg.UnlockWallet.StartConsensus))
	}

	<-ctx.Done()
	log.Info("shutting down node")
	prometheus.ShutDown()
	pprof.ShutDown()
	return nil
}
