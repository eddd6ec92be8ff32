package service

import (
	"github.com/jsdanielh/pos-state-dump/internal/model"
	"github.com/jsdanielh/pos-state-dump/internal/nimiq"
)

// normalizeValidator maps a raw validator record to its genesis entry.
func normalizeValidator(validator nimiq.Validator) model.Validator {
	return model.Validator{
		ValidatorAddress: validator.Address,
		SigningKey:       validator.SigningKey,
		VotingKey:        validator.VotingKey,
		RewardAddress:    validator.RewardAddress,
		InactiveFrom:     validator.InactivityFlag,
		JailedFrom:       validator.JailedFrom,
		Retired:          validator.Retired,
	}
}

// normalizeStaker maps a raw staker record to its genesis entry, raising the
// balance to the protocol minimum stake when the node reports less. The raw
// balance is not kept.
func normalizeStaker(staker nimiq.Staker) model.Staker {
	balance := staker.Balance
	if balance < model.MinimumStake {
		balance = model.MinimumStake
	}
	return model.Staker{
		StakerAddress:   staker.Address,
		Balance:         balance,
		Delegation:      staker.Delegation,
		InactiveBalance: staker.InactiveBalance,
		InactiveFrom:    staker.InactiveFrom,
	}
}
