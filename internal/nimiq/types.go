// Package nimiq implements the JSON-RPC client for a Nimiq PoS node.
package nimiq

// AccountType is the discriminator tag carried by every account record.
type AccountType string

const (
	// AccountBasic tags a plain balance-holding account.
	AccountBasic AccountType = "basic"
	// AccountVesting tags a vesting contract account.
	AccountVesting AccountType = "vesting"
	// AccountHTLC tags a hashed time-locked contract account.
	AccountHTLC AccountType = "htlc"
)

// Block is the latest block header as reported by the node.
type Block struct {
	Number int64  `json:"number"`
	Hash   string `json:"hash"`
}

// Account is a raw account record. The node tags each record with exactly one
// type; the variant fields beyond address/balance are populated only for the
// matching variant.
type Account struct {
	Type    AccountType `json:"type"`
	Address string      `json:"address"`
	Balance uint64      `json:"balance"`

	// vesting
	Owner      string `json:"owner"`
	StartTime  uint64 `json:"startTime"`
	TimeStep   uint64 `json:"timeStep"`
	StepAmount uint64 `json:"stepAmount"`

	// htlc
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	HashRoot  string `json:"hashRoot"`
	HashCount uint8  `json:"hashCount"`
	Timeout   uint64 `json:"timeout"`

	// shared by vesting and htlc
	TotalAmount uint64 `json:"totalAmount"`
}

// Validator is a raw validator record.
type Validator struct {
	Address        string  `json:"address"`
	SigningKey     string  `json:"signingKey"`
	VotingKey      string  `json:"votingKey"`
	RewardAddress  string  `json:"rewardAddress"`
	Balance        uint64  `json:"balance"`
	InactivityFlag *uint32 `json:"inactivityFlag"`
	Retired        bool    `json:"retired"`
	JailedFrom     *uint32 `json:"jailedFrom"`
}

// Staker is a raw staker record, fetched per delegation target.
type Staker struct {
	Address         string  `json:"address"`
	Balance         uint64  `json:"balance"`
	Delegation      string  `json:"delegation"`
	InactiveBalance uint64  `json:"inactiveBalance"`
	InactiveFrom    *uint32 `json:"inactiveFrom"`
}

// result is the node's response envelope. Every method wraps its payload in a
// data field next to blockchain-state metadata this tool does not consume.
type result[T any] struct {
	Data T `json:"data"`
}
