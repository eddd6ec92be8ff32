// Package service implements the snapshot build pipeline: fetch, classify,
// normalize, assemble.
package service

import (
	"context"

	"github.com/jsdanielh/pos-state-dump/internal/nimiq"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainReader provides the chain state a snapshot is built from. All four
	// reads are taken over one session against the node's latest state.
	ChainReader interface {
		GetLatestBlock(ctx context.Context) (nimiq.Block, error)
		GetAccounts(ctx context.Context) ([]nimiq.Account, error)
		GetValidators(ctx context.Context) ([]nimiq.Validator, error)
		GetStakersByValidatorAddress(ctx context.Context, address string) ([]nimiq.Staker, error)
	}
)

// GenesisParams are the caller-supplied fields of the genesis document that
// cannot be read from the node.
type GenesisParams struct {
	Name               string
	Network            string
	SeedMessage        string
	VRFSeed            string
	ParentHash         string
	ParentElectionHash string
	HistoryRoot        string
	BlockNumber        uint64
}
