package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/stakepulse/stakepulse-backend/internal/accumulator"
	"github.com/stakepulse/stakepulse-backend/internal/chain"
	"github.com/stakepulse/stakepulse-backend/internal/metrics"
	"github.com/stakepulse/stakepulse-backend/internal/service"
	"github.com/stakepulse/stakepulse-backend/internal/transport"
)

type config struct {
	RPCURL          string        `long:"rpc-url" env:"STAKEPULSE_RPC_URL" description:"EVM JSON-RPC endpoint" default:"http://127.0.0.1:8545"`
	Network         string        `long:"network" env:"STAKEPULSE_NETWORK" description:"network name" default:"mainnet"`
	Wallet          string        `long:"wallet" env:"STAKEPULSE_WALLET" description:"tracked wallet address" required:"true"`
	StakingContract string        `long:"staking-contract" env:"STAKEPULSE_STAKING_CONTRACT" description:"staking rewards contract address" required:"true"`
	Collection      string        `long:"collection" env:"STAKEPULSE_COLLECTION" description:"ERC-721 collection address" required:"true"`
	TokenDecimals   int32         `long:"token-decimals" env:"STAKEPULSE_TOKEN_DECIMALS" description:"reward token display decimals" default:"18"`
	PollInterval    time.Duration `long:"poll-interval" env:"STAKEPULSE_POLL_INTERVAL" description:"poll cadence" default:"45s"`
	Addr            string        `long:"addr" env:"STAKEPULSE_ADDR" description:"http listen addr" default:":8000"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	for name, addr := range map[string]string{
		"wallet":           cfg.Wallet,
		"staking-contract": cfg.StakingContract,
		"collection":       cfg.Collection,
	} {
		if !common.IsHexAddress(addr) {
			logger.Fatal("invalid address flag", zap.String("flag", name), zap.String("value", addr))
		}
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("stakepulse dashboard failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("dial rpc endpoint: %w", err)
	}
	defer client.Close()

	wallet := common.HexToAddress(cfg.Wallet)

	fetcher, err := chain.NewFetcher(
		client,
		common.HexToAddress(cfg.StakingContract),
		common.HexToAddress(cfg.Collection),
		logger,
	)
	if err != nil {
		return fmt.Errorf("init chain fetcher: %w", err)
	}

	dashboard := transport.NewDashboard(logger)
	dashboard.Start(ctx)
	defer dashboard.Stop()

	poller, err := service.NewPoller(
		fetcher,
		accumulator.New(cfg.TokenDecimals),
		metrics.NewPoller(cfg.Network, wallet.Hex()),
		dashboard,
		wallet,
		cfg.Network,
		cfg.TokenDecimals,
		cfg.PollInterval,
		logger,
	)
	if err != nil {
		return fmt.Errorf("init poller: %w", err)
	}

	mux := http.NewServeMux()
	dashboard.Routes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- poller.Run(ctx)
	}()
	go func() {
		logger.Info("starting HTTP server", zap.String("addr", cfg.Addr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen and serve: %w", err)
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	return <-errCh
}
