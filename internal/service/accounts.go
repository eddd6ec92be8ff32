package service

import (
	"go.uber.org/zap"

	"github.com/jsdanielh/pos-state-dump/internal/model"
	"github.com/jsdanielh/pos-state-dump/internal/nimiq"
)

// classifyAccounts partitions raw account records by their type tag,
// preserving arrival order within each partition. Fields are carried over
// verbatim. Records with a tag this tool does not know are skipped so a node
// running a newer protocol version does not abort the dump.
func classifyAccounts(accounts []nimiq.Account, logger *zap.Logger) (
	basic []model.BasicAccount,
	vesting []model.VestingAccount,
	htlc []model.HTLCAccount,
) {
	for _, account := range accounts {
		switch account.Type {
		case nimiq.AccountBasic:
			basic = append(basic, model.BasicAccount{
				Address: account.Address,
				Balance: account.Balance,
			})
		case nimiq.AccountVesting:
			vesting = append(vesting, model.VestingAccount{
				Address:     account.Address,
				Owner:       account.Owner,
				Balance:     account.Balance,
				StartTime:   account.StartTime,
				TimeStep:    account.TimeStep,
				StepAmount:  account.StepAmount,
				TotalAmount: account.TotalAmount,
			})
		case nimiq.AccountHTLC:
			htlc = append(htlc, model.HTLCAccount{
				Address:     account.Address,
				Sender:      account.Sender,
				Recipient:   account.Recipient,
				Balance:     account.Balance,
				HashRoot:    account.HashRoot,
				HashCount:   account.HashCount,
				Timeout:     account.Timeout,
				TotalAmount: account.TotalAmount,
			})
		default:
			logger.Debug("skipping account with unrecognized type",
				zap.String("address", account.Address),
				zap.String("type", string(account.Type)))
		}
	}
	return basic, vesting, htlc
}
