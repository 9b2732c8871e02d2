package model

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// StakeSnapshot captures the on-chain counters for one wallet at one poll.
// All amounts are base units.
type StakeSnapshot struct {
	StakedAmount  *big.Int
	EarnedRewards *big.Int
	TotalStaked   *big.Int
	RewardRate    *big.Int
	StakedTokens  []string
}

// ZeroStakeSnapshot returns a snapshot with every counter at zero. Used as the
// cold-start default and as the degraded value when a poll fails.
func ZeroStakeSnapshot() StakeSnapshot {
	return StakeSnapshot{
		StakedAmount:  new(big.Int),
		EarnedRewards: new(big.Int),
		TotalStaked:   new(big.Int),
		RewardRate:    new(big.Int),
	}
}

// Rate holds the trailing-window rate extrapolated to three horizons.
type Rate struct {
	PerMinute decimal.Decimal `json:"per_minute"`
	PerHour   decimal.Decimal `json:"per_hour"`
	PerDay    decimal.Decimal `json:"per_day"`
}

// RewardStats is the accumulator's derived view of a session.
// SessionPerMinute is the average rate since session start; CurrentRate is the
// smoothed trailing-window rate. They answer different questions and are both
// exposed.
type RewardStats struct {
	SessionTotal           decimal.Decimal `json:"session_total"`
	SessionDurationMinutes float64         `json:"session_duration_minutes"`
	SessionPerMinute       decimal.Decimal `json:"session_per_minute"`
	CurrentRate            Rate            `json:"current_rate"`

	SessionTotalDisplay     string `json:"session_total_display"`
	SessionPerMinuteDisplay string `json:"session_per_minute_display"`
	PerMinuteDisplay        string `json:"per_minute_display"`
	PerHourDisplay          string `json:"per_hour_display"`
	PerDayDisplay           string `json:"per_day_display"`
}

// TokenStake is one entry of the per-token breakdown shown on the dashboard.
type TokenStake struct {
	TokenID string `json:"token_id"`
	Staked  bool   `json:"staked"`
}

// PollResult is the combined view handed to the presentation layer: the
// accumulator stats plus passthrough fields it does not compute.
type PollResult struct {
	Wallet        string          `json:"wallet"`
	ObservedAt    time.Time       `json:"observed_at"`
	Stats         RewardStats     `json:"stats"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	StakedAmount  decimal.Decimal `json:"staked_amount"`
	TotalStaked   decimal.Decimal `json:"total_staked"`
	RewardRate    decimal.Decimal `json:"reward_rate"`
	Tokens        []TokenStake    `json:"tokens"`
	Degraded      bool            `json:"degraded"`
}
