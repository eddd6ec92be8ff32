package nimiq

import (
	"encoding/json"
	"testing"
)

func TestAccountDecode(t *testing.T) {
	payload := `{"data": [
		{"type": "basic", "address": "NQ01", "balance": 500},
		{"type": "vesting", "address": "NQ02", "owner": "NQ03", "balance": 100,
		 "startTime": 10, "timeStep": 20, "stepAmount": 5, "totalAmount": 100},
		{"type": "htlc", "address": "NQ04", "sender": "NQ05", "recipient": "NQ06",
		 "balance": 200, "hashRoot": "ab", "hashCount": 2, "timeout": 9, "totalAmount": 200},
		{"type": "staking", "address": "NQ07", "balance": 1}
	]}`

	var res result[[]Account]
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	accounts := res.Data
	if len(accounts) != 4 {
		t.Fatalf("got %d accounts, want 4", len(accounts))
	}

	if accounts[0].Type != AccountBasic || accounts[0].Balance != 500 {
		t.Errorf("basic account decoded as %+v", accounts[0])
	}
	if accounts[1].Type != AccountVesting || accounts[1].Owner != "NQ03" || accounts[1].TimeStep != 20 {
		t.Errorf("vesting account decoded as %+v", accounts[1])
	}
	if accounts[2].Type != AccountHTLC || accounts[2].HashRoot != "ab" || accounts[2].HashCount != 2 {
		t.Errorf("htlc account decoded as %+v", accounts[2])
	}
	if accounts[3].Type != AccountType("staking") {
		t.Errorf("unknown tag decoded as %q, want staking", accounts[3].Type)
	}
}
