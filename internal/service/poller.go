// Package service drives the poll loop: fetch chain state, feed the reward
// accumulator, hand the combined result to the presentation layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/stakepulse/stakepulse-backend/internal/clock"
	"github.com/stakepulse/stakepulse-backend/internal/model"
	"github.com/stakepulse/stakepulse-backend/pkg/format"
)

const (
	defaultPollInterval = 45 * time.Second

	// nativeDecimals scales the wallet's native-coin balance for display.
	nativeDecimals = 18
)

// chainObservation bundles the three fetches of one poll cycle.
type chainObservation struct {
	snapshot model.StakeSnapshot
	balance  *big.Int
	owned    []string
}

// Poller polls the chain on a fixed cadence for one wallet. The cadence is a
// property of this loop, not of the accumulator.
type Poller struct {
	logger   *zap.Logger
	fetcher  ChainFetcher
	tracker  RewardTracker
	metrics  PollerMetrics
	sink     ResultSink
	wallet   common.Address
	network  string
	decimals int32
	interval time.Duration
	sleep    func(context.Context, time.Duration) error
	now      clock.NowFunc

	// last successfully observed chain state; zero-valued until the first
	// good poll so a failed fetch degrades to defaults instead of surfacing
	last chainObservation
}

// NewPoller builds the poll loop with its dependencies.
func NewPoller(
	fetcher ChainFetcher,
	tracker RewardTracker,
	metrics PollerMetrics,
	sink ResultSink,
	wallet common.Address,
	network string,
	decimals int32,
	interval time.Duration,
	logger *zap.Logger,
) (*Poller, error) {
	if metrics == nil {
		return nil, errors.New("poller metrics is required")
	}
	if sink == nil {
		return nil, errors.New("poller result sink is required")
	}
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &Poller{
		logger: logger.With(
			zap.String("network", network),
			zap.String("wallet", wallet.Hex()),
		),
		fetcher:  fetcher,
		tracker:  tracker,
		metrics:  metrics,
		sink:     sink,
		wallet:   wallet,
		network:  network,
		decimals: decimals,
		interval: interval,
		sleep:    clock.SleepWithContext,
		now:      time.Now,
		last: chainObservation{
			snapshot: model.ZeroStakeSnapshot(),
			balance:  new(big.Int),
		},
	}, nil
}

// Run polls until the context is canceled.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("starting poll loop", zap.Duration("interval", p.interval))

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := p.poll(ctx); err != nil {
			p.logger.Warn("poll cycle failed", zap.Error(err))
		}
		if err := p.sleep(ctx, p.interval); err != nil {
			return err
		}
	}
}

func (p *Poller) poll(ctx context.Context) error {
	started := p.now()

	observation, err := p.fetch(ctx)
	p.metrics.ObserveFetch(err, started)

	degraded := err != nil
	if degraded {
		// serve the last observed state; the accumulator never sees a failed
		// poll, so a transient RPC error cannot reset or skew the session
		p.logger.Warn("chain fetch failed, keeping last observed state", zap.Error(err))
		observation = p.last
	} else {
		p.last = observation

		if err := p.tracker.Update(observation.snapshot.EarnedRewards); err != nil {
			p.metrics.ObserveCycle(true)
			return fmt.Errorf("update reward tracker: %w", err)
		}
	}

	stats := p.tracker.Stats()
	p.metrics.SetRewardGauges(
		stats.SessionTotal.InexactFloat64(),
		stats.CurrentRate.PerMinute.InexactFloat64(),
	)
	p.metrics.ObserveCycle(degraded)

	if err := p.sink.Publish(ctx, p.assemble(observation, stats, degraded)); err != nil {
		return fmt.Errorf("publish poll result: %w", err)
	}

	p.logger.Debug("poll cycle complete",
		zap.Bool("degraded", degraded),
		zap.String("session_total", stats.SessionTotalDisplay))
	return nil
}

func (p *Poller) fetch(ctx context.Context) (chainObservation, error) {
	balance, err := p.fetcher.FetchBalance(ctx, p.wallet)
	if err != nil {
		return chainObservation{}, fmt.Errorf("fetch balance: %w", err)
	}
	owned, err := p.fetcher.FetchOwnedTokenIDs(ctx, p.wallet)
	if err != nil {
		return chainObservation{}, fmt.Errorf("fetch owned tokens: %w", err)
	}
	snapshot, err := p.fetcher.FetchStakeSnapshot(ctx, p.wallet)
	if err != nil {
		return chainObservation{}, fmt.Errorf("fetch stake snapshot: %w", err)
	}

	return chainObservation{snapshot: snapshot, balance: balance, owned: owned}, nil
}

func (p *Poller) assemble(obs chainObservation, stats model.RewardStats, degraded bool) model.PollResult {
	tokens := make([]model.TokenStake, 0, len(obs.snapshot.StakedTokens)+len(obs.owned))
	for _, id := range obs.snapshot.StakedTokens {
		tokens = append(tokens, model.TokenStake{TokenID: id, Staked: true})
	}
	for _, id := range obs.owned {
		tokens = append(tokens, model.TokenStake{TokenID: id, Staked: false})
	}

	return model.PollResult{
		Wallet:        p.wallet.Hex(),
		ObservedAt:    p.now(),
		Stats:         stats,
		WalletBalance: format.FromBaseUnits(obs.balance, nativeDecimals),
		StakedAmount:  format.FromBaseUnits(obs.snapshot.StakedAmount, p.decimals),
		TotalStaked:   format.FromBaseUnits(obs.snapshot.TotalStaked, p.decimals),
		RewardRate:    format.FromBaseUnits(obs.snapshot.RewardRate, p.decimals),
		Tokens:        tokens,
		Degraded:      degraded,
	}
}
