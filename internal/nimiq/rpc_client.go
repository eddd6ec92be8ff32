package nimiq

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client wraps a JSON-RPC connection to the node with metrics instrumentation.
type Client struct {
	rpc        *rpc.Client
	rpcMetrics RPCMetrics
}

// Dial connects to the node's websocket RPC endpoint.
func Dial(ctx context.Context, host string, port int, rpcMetrics RPCMetrics) (*Client, error) {
	url := fmt.Sprintf("ws://%s:%d/ws", host, port)
	conn, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return &Client{
		rpc:        conn,
		rpcMetrics: rpcMetrics,
	}, nil
}

// Close tears down the RPC connection.
func (c *Client) Close() {
	c.rpc.Close()
}

// GetLatestBlock returns the latest block header, without its body.
func (c *Client) GetLatestBlock(ctx context.Context) (block Block, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_latest_block", err, started)
	}()
	var res result[Block]
	if err = c.rpc.CallContext(ctx, &res, "getLatestBlock", false); err != nil {
		return Block{}, err
	}
	return res.Data, nil
}

// GetAccounts returns every account in the accounts tree.
func (c *Client) GetAccounts(ctx context.Context) (accounts []Account, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_accounts", err, started)
	}()
	var res result[[]Account]
	if err = c.rpc.CallContext(ctx, &res, "getAccounts"); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetValidators returns every validator in the staking contract.
func (c *Client) GetValidators(ctx context.Context) (validators []Validator, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_validators", err, started)
	}()
	var res result[[]Validator]
	if err = c.rpc.CallContext(ctx, &res, "getValidators"); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetStakersByValidatorAddress returns the stakers delegating to a validator.
func (c *Client) GetStakersByValidatorAddress(ctx context.Context, address string) (stakers []Staker, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_stakers_by_validator_address", err, started)
	}()
	var res result[[]Staker]
	if err = c.rpc.CallContext(ctx, &res, "getStakersByValidatorAddress", address); err != nil {
		return nil, err
	}
	return res.Data, nil
}
