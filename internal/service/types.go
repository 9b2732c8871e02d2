package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/stakepulse/stakepulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainFetcher interface {
		FetchBalance(ctx context.Context, owner common.Address) (*big.Int, error)
		FetchOwnedTokenIDs(ctx context.Context, owner common.Address) ([]string, error)
		FetchStakeSnapshot(ctx context.Context, owner common.Address) (model.StakeSnapshot, error)
	}
	RewardTracker interface {
		Update(current *big.Int) error
		Stats() model.RewardStats
	}
	PollerMetrics interface {
		ObserveFetch(err error, started time.Time)
		ObserveCycle(degraded bool)
		SetRewardGauges(sessionTotal, perMinute float64)
	}
	ResultSink interface {
		Publish(ctx context.Context, result model.PollResult) error
	}
)
