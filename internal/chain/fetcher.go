// Package chain implements read-only queries against the staking contract and
// the ERC-721 collection for a single wallet.
package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/stakepulse/stakepulse-backend/internal/model"
	"github.com/stakepulse/stakepulse-backend/pkg/safe"
	"github.com/stakepulse/stakepulse-backend/pkg/workerpool"
)

// Synthetix-style staking rewards contract plus the deposit enumeration used
// by NFT staking pools.
const stakingABIJSON = `[
	{"name":"earned","type":"function","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"totalSupply","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"rewardRate","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"depositsOf","type":"function","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256[]"}]}
]`

const erc721ABIJSON = `[
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"tokenOfOwnerByIndex","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"index","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]}
]`

const (
	enumerationWorkers = 4
	requestsPerSecond  = 10

	// maxOwnedTokens caps the enumeration fan-out; a wallet holding more is a
	// misconfiguration for a single-wallet dashboard.
	maxOwnedTokens = 10_000
)

// Fetcher issues the read-only contract queries for one wallet. Its exact
// transport is irrelevant to the accumulator; everything it returns is a
// validated non-negative base-unit integer.
type Fetcher struct {
	backend    ContractBackend
	staking    common.Address
	collection common.Address
	stakingABI abi.ABI
	erc721ABI  abi.ABI
	rl         ratelimit.Limiter
	logger     *zap.Logger
}

// NewFetcher builds a Fetcher bound to the staking and collection contracts.
func NewFetcher(backend ContractBackend, staking, collection common.Address, logger *zap.Logger) (*Fetcher, error) {
	stakingABI, err := abi.JSON(strings.NewReader(stakingABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse staking abi: %w", err)
	}
	erc721ABI, err := abi.JSON(strings.NewReader(erc721ABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse erc721 abi: %w", err)
	}

	return &Fetcher{
		backend:    backend,
		staking:    staking,
		collection: collection,
		stakingABI: stakingABI,
		erc721ABI:  erc721ABI,
		rl:         ratelimit.New(requestsPerSecond),
		logger:     logger.Named("chain"),
	}, nil
}

// FetchBalance returns the wallet's native balance in base units.
func (f *Fetcher) FetchBalance(ctx context.Context, owner common.Address) (*big.Int, error) {
	f.rl.Take()
	balance, err := f.backend.BalanceAt(ctx, owner, nil)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", owner, err)
	}
	if err := safe.NonNegative(balance); err != nil {
		return nil, fmt.Errorf("balance of %s: %w", owner, err)
	}
	return balance, nil
}

// FetchOwnedTokenIDs enumerates the collection tokens held by the wallet via
// balanceOf + tokenOfOwnerByIndex, fanning the index calls out over a small
// worker pool.
func (f *Fetcher) FetchOwnedTokenIDs(ctx context.Context, owner common.Address) ([]string, error) {
	count, err := f.callUint(ctx, f.collection, f.erc721ABI, "balanceOf", owner)
	if err != nil {
		return nil, err
	}
	if !count.IsInt64() || count.Int64() > maxOwnedTokens {
		return nil, fmt.Errorf("owner %s holds %s tokens, above enumeration cap %d", owner, count, maxOwnedTokens)
	}

	n := count.Int64()
	indexes := make([]int64, n)
	for i := range indexes {
		indexes[i] = int64(i)
	}

	ids, err := workerpool.Map(ctx, enumerationWorkers, indexes, func(ctx context.Context, idx int64) (string, error) {
		id, err := f.callUint(ctx, f.collection, f.erc721ABI, "tokenOfOwnerByIndex", owner, big.NewInt(idx))
		if err != nil {
			return "", err
		}
		return id.String(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate tokens of %s: %w", owner, err)
	}

	return ids, nil
}

// FetchStakeSnapshot reads the staking contract counters for the wallet.
func (f *Fetcher) FetchStakeSnapshot(ctx context.Context, owner common.Address) (model.StakeSnapshot, error) {
	snapshot := model.StakeSnapshot{}

	var err error
	if snapshot.EarnedRewards, err = f.callUint(ctx, f.staking, f.stakingABI, "earned", owner); err != nil {
		return model.StakeSnapshot{}, err
	}
	if snapshot.StakedAmount, err = f.callUint(ctx, f.staking, f.stakingABI, "balanceOf", owner); err != nil {
		return model.StakeSnapshot{}, err
	}
	if snapshot.TotalStaked, err = f.callUint(ctx, f.staking, f.stakingABI, "totalSupply"); err != nil {
		return model.StakeSnapshot{}, err
	}
	if snapshot.RewardRate, err = f.callUint(ctx, f.staking, f.stakingABI, "rewardRate"); err != nil {
		return model.StakeSnapshot{}, err
	}

	deposits, err := f.call(ctx, f.staking, f.stakingABI, "depositsOf", owner)
	if err != nil {
		return model.StakeSnapshot{}, err
	}
	ids, ok := deposits[0].([]*big.Int)
	if !ok {
		return model.StakeSnapshot{}, fmt.Errorf("depositsOf: unexpected output type %T", deposits[0])
	}
	snapshot.StakedTokens = make([]string, 0, len(ids))
	for _, id := range ids {
		if err := safe.NonNegative(id); err != nil {
			return model.StakeSnapshot{}, fmt.Errorf("depositsOf: %w", err)
		}
		snapshot.StakedTokens = append(snapshot.StakedTokens, id.String())
	}

	return snapshot, nil
}

func (f *Fetcher) callUint(ctx context.Context, to common.Address, contract abi.ABI, method string, args ...interface{}) (*big.Int, error) {
	out, err := f.call(ctx, to, contract, method, args...)
	if err != nil {
		return nil, err
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected output type %T", method, out[0])
	}
	if err := safe.NonNegative(v); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return v, nil
}

func (f *Fetcher) call(ctx context.Context, to common.Address, contract abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contract.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	f.rl.Take()
	raw, err := f.backend.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	out, err := contract.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("call %s: empty result", method)
	}
	return out, nil
}
