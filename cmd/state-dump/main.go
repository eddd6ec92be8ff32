package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jsdanielh/pos-state-dump/internal/genesis"
	"github.com/jsdanielh/pos-state-dump/internal/metrics"
	"github.com/jsdanielh/pos-state-dump/internal/nimiq"
	"github.com/jsdanielh/pos-state-dump/internal/service"
)

type config struct {
	Host               string `short:"H" long:"host" env:"STATE_DUMP_HOST" description:"RPC host of the Nimiq node" required:"true"`
	Port               int    `short:"P" long:"port" env:"STATE_DUMP_PORT" description:"RPC port of the Nimiq node" required:"true"`
	File               string `short:"f" long:"file" env:"STATE_DUMP_FILE" description:"file where the genesis TOML is written" required:"true"`
	VRFSeed            string `short:"V" long:"vrf" env:"STATE_DUMP_VRF" description:"VRF seed for the generated genesis" required:"true"`
	ParentHash         string `short:"p" long:"parent" env:"STATE_DUMP_PARENT" description:"parent hash for the generated genesis" required:"true"`
	ParentElectionHash string `short:"e" long:"election" env:"STATE_DUMP_ELECTION" description:"parent election hash for the generated genesis" required:"true"`
	HistoryRoot        string `long:"history-root" env:"STATE_DUMP_HISTORY_ROOT" description:"history root for the generated genesis" required:"true"`
	GenesisBlockNumber uint64 `long:"genesis-block-number" env:"STATE_DUMP_GENESIS_BLOCK_NUMBER" description:"block number of the generated genesis" required:"true"`
	Name               string `long:"name" env:"STATE_DUMP_NAME" description:"genesis config name" default:"test-albatross"`
	Network            string `long:"network" env:"STATE_DUMP_NETWORK" description:"network name" default:"test"`
	SeedMessage        string `long:"seed-message" env:"STATE_DUMP_SEED_MESSAGE" description:"optional seed message"`
	RPS                int    `long:"rps" env:"STATE_DUMP_RPS" description:"cap on node RPC calls per second, 0 for unlimited"`
	PushgatewayURL     string `long:"pushgateway-url" env:"STATE_DUMP_PUSHGATEWAY_URL" description:"Prometheus pushgateway to push run metrics to"`
	Verbose            []bool `short:"v" long:"verbose" description:"lower the log threshold one step per occurrence"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	logger, err := newLogger(len(cfg.Verbose))
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("state dump failed", zap.Error(err))
	}
}

func newLogger(verbosity int) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	for i := 0; i < verbosity; i++ {
		if level > zapcore.DebugLevel {
			level--
		}
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	rpcMetrics := metrics.NewRPCClient(cfg.Network)

	client, err := nimiq.Dial(ctx, cfg.Host, cfg.Port, rpcMetrics)
	if err != nil {
		return fmt.Errorf("connect to node: %w", err)
	}
	defer client.Close()

	var limiter ratelimit.Limiter
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	builder := service.NewSnapshotBuilder(client, logger, nil, limiter)
	snapshot, err := builder.Build(ctx, service.GenesisParams{
		Name:               cfg.Name,
		Network:            cfg.Network,
		SeedMessage:        cfg.SeedMessage,
		VRFSeed:            cfg.VRFSeed,
		ParentHash:         cfg.ParentHash,
		ParentElectionHash: cfg.ParentElectionHash,
		HistoryRoot:        cfg.HistoryRoot,
		BlockNumber:        cfg.GenesisBlockNumber,
	})
	if err != nil {
		return err
	}

	if err := genesis.WriteFile(cfg.File, snapshot); err != nil {
		return err
	}
	logger.Info("output written", zap.String("file", cfg.File))

	if cfg.PushgatewayURL != "" {
		if err := push.New(cfg.PushgatewayURL, "pos-state-dump").
			Gatherer(prometheus.DefaultGatherer).
			Push(); err != nil {
			logger.Warn("failed to push run metrics", zap.Error(err))
		}
	}
	return nil
}
