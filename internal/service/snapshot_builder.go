package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/jsdanielh/pos-state-dump/internal/clock"
	"github.com/jsdanielh/pos-state-dump/internal/model"
	"github.com/jsdanielh/pos-state-dump/pkg/safe"
)

// SnapshotBuilder assembles a genesis snapshot from chain state read over one
// node session. Reads are strictly sequential so the result approximates a
// single latest-observed state.
type SnapshotBuilder struct {
	chain   ChainReader
	logger  *zap.Logger
	clock   clock.Clock
	limiter ratelimit.Limiter
}

// NewSnapshotBuilder builds the snapshot builder with the provided
// dependencies. A nil limiter disables pacing of node calls.
func NewSnapshotBuilder(
	chain ChainReader,
	logger *zap.Logger,
	clk clock.Clock,
	limiter ratelimit.Limiter,
) *SnapshotBuilder {
	if clk == nil {
		clk = clock.UTC{}
	}
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &SnapshotBuilder{
		chain:   chain,
		logger:  logger,
		clock:   clk,
		limiter: limiter,
	}
}

// Build fetches the latest block header, all accounts, all validators and
// their stakers, and assembles them into one snapshot. Any fetch failure
// aborts the run; there are no retries.
func (b *SnapshotBuilder) Build(ctx context.Context, params GenesisParams) (*model.Snapshot, error) {
	b.limiter.Take()
	block, err := b.chain.GetLatestBlock(ctx)
	if err != nil {
		return nil, fmt.Errorf("get latest block: %w", err)
	}
	height, err := safe.Uint64(block.Number)
	if err != nil {
		return nil, fmt.Errorf("block number %d: %w", block.Number, err)
	}
	timestamp := b.clock.Now().Format(time.RFC3339)

	b.logger.Info("running for block",
		zap.Uint64("number", height),
		zap.String("hash", block.Hash))

	b.limiter.Take()
	accounts, err := b.chain.GetAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get accounts: %w", err)
	}
	basic, vesting, htlc := classifyAccounts(accounts, b.logger)

	validators, stakers, err := b.collectStaking(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Snapshot{
		Provenance: model.Provenance{
			GeneratedAt: timestamp,
			BlockHeight: height,
			BlockHash:   block.Hash,
		},
		Name:               params.Name,
		Network:            params.Network,
		SeedMessage:        params.SeedMessage,
		Timestamp:          timestamp,
		VRFSeed:            params.VRFSeed,
		ParentHash:         params.ParentHash,
		HistoryRoot:        params.HistoryRoot,
		ParentElectionHash: params.ParentElectionHash,
		BlockNumber:        params.BlockNumber,
		BasicAccounts:      basic,
		VestingAccounts:    vesting,
		HTLCAccounts:       htlc,
		Validators:         validators,
		Stakers:            stakers,
	}, nil
}

// collectStaking normalizes validators in fetch order and, for each, its
// stakers in per-validator fetch order. One staker lookup per validator.
func (b *SnapshotBuilder) collectStaking(ctx context.Context) ([]model.Validator, []model.Staker, error) {
	b.limiter.Take()
	rawValidators, err := b.chain.GetValidators(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get validators: %w", err)
	}

	var (
		validators []model.Validator
		stakers    []model.Staker
	)
	for _, validator := range rawValidators {
		b.logger.Info("processing validator",
			zap.String("address", validator.Address),
			zap.Uint64("balance", validator.Balance))

		validators = append(validators, normalizeValidator(validator))

		b.limiter.Take()
		rawStakers, err := b.chain.GetStakersByValidatorAddress(ctx, validator.Address)
		if err != nil {
			return nil, nil, fmt.Errorf("get stakers of validator %s: %w", validator.Address, err)
		}
		for _, staker := range rawStakers {
			stakers = append(stakers, normalizeStaker(staker))
		}
	}
	return validators, stakers, nil
}
