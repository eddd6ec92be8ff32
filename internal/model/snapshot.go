// Package model defines the genesis snapshot output model.
package model

// MinimumStake is the protocol floor, in luna, for a staker's effective
// balance. Stakers reported below it are raised to it during normalization.
const MinimumStake uint64 = 10_000_000

// Snapshot is the assembled genesis state for one run. Field order fixes the
// key order of the encoded document; a collection is encoded only when
// non-empty. Built once per run and never mutated afterwards.
type Snapshot struct {
	Provenance Provenance `toml:"-"`

	Name               string `toml:"name"`
	Network            string `toml:"network"`
	SeedMessage        string `toml:"seed_message,omitempty"`
	Timestamp          string `toml:"timestamp"`
	VRFSeed            string `toml:"vrf_seed"`
	ParentHash         string `toml:"parent_hash"`
	HistoryRoot        string `toml:"history_root"`
	ParentElectionHash string `toml:"parent_election_hash"`
	BlockNumber        uint64 `toml:"block_number"`

	BasicAccounts   []BasicAccount   `toml:"basic_accounts,omitempty"`
	VestingAccounts []VestingAccount `toml:"vesting_accounts,omitempty"`
	HTLCAccounts    []HTLCAccount    `toml:"htlc_accounts,omitempty"`
	Validators      []Validator      `toml:"validators,omitempty"`
	Stakers         []Staker         `toml:"stakers,omitempty"`
}

// Provenance describes where and when the snapshot was taken. Rendered as
// leading commentary ahead of the document body, never as document fields.
type Provenance struct {
	GeneratedAt string
	BlockHeight uint64
	BlockHash   string
}

// BasicAccount is a plain balance-holding account.
type BasicAccount struct {
	Address string `toml:"address"`
	Balance uint64 `toml:"balance"`
}

// VestingAccount is an account whose balance unlocks on a step schedule.
type VestingAccount struct {
	Address     string `toml:"address"`
	Owner       string `toml:"owner"`
	Balance     uint64 `toml:"balance"`
	StartTime   uint64 `toml:"start_time"`
	TimeStep    uint64 `toml:"time_step"`
	StepAmount  uint64 `toml:"step_amount"`
	TotalAmount uint64 `toml:"total_amount"`
}

// HTLCAccount is a hashed time-locked contract account.
type HTLCAccount struct {
	Address     string `toml:"address"`
	Sender      string `toml:"sender"`
	Recipient   string `toml:"recipient"`
	Balance     uint64 `toml:"balance"`
	HashRoot    string `toml:"hash_root"`
	HashCount   uint8  `toml:"hash_count"`
	Timeout     uint64 `toml:"timeout"`
	TotalAmount uint64 `toml:"total_amount"`
}

// Validator is one genesis validator entry.
type Validator struct {
	ValidatorAddress string  `toml:"validator_address"`
	SigningKey       string  `toml:"signing_key"`
	VotingKey        string  `toml:"voting_key"`
	RewardAddress    string  `toml:"reward_address"`
	InactiveFrom     *uint32 `toml:"inactive_from,omitempty"`
	JailedFrom       *uint32 `toml:"jailed_from,omitempty"`
	Retired          bool    `toml:"retired,omitempty"`
}

// Staker is one genesis staker entry, grouped under its delegation target.
type Staker struct {
	StakerAddress   string  `toml:"staker_address"`
	Balance         uint64  `toml:"balance"`
	Delegation      string  `toml:"delegation"`
	InactiveBalance uint64  `toml:"inactive_balance,omitempty"`
	InactiveFrom    *uint32 `toml:"inactive_from,omitempty"`
}
