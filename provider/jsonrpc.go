package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/starkstream/node/adapters/sn2core"
	"github.com/starkstream/node/core"
	"github.com/starkstream/node/core/felt"
	"github.com/starkstream/node/starknet"
	"github.com/starkstream/node/utils"
)

// JSON-RPC error code the backend answers with when a block does not exist.
const blockNotFoundCode = 24

// JSONRPC is a Provider over a StarkNet JSON-RPC endpoint. It holds no
// mutable shared state; each call is independently dispatched and the
// pending/confirmed consistency check runs after the response is decoded,
// before anything is returned.
type JSONRPC struct {
	client   *rpc.Client
	listener EventListener
	log      utils.SimpleLogger
}

var _ Provider = (*JSONRPC)(nil)

// NewJSONRPC dials the backend at url. A malformed URL is a fatal,
// non-retryable configuration error.
func NewJSONRPC(ctx context.Context, url string) (*JSONRPC, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial starknet backend: %w", err)
	}
	return &JSONRPC{
		client:   client,
		listener: &SelectiveListener{},
		log:      utils.NewNopZapLogger(),
	}, nil
}

func (p *JSONRPC) WithListener(l EventListener) *JSONRPC {
	p.listener = l
	return p
}

func (p *JSONRPC) WithLogger(log utils.SimpleLogger) *JSONRPC {
	p.log = log
	return p
}

func (p *JSONRPC) Close() {
	p.client.Close()
}

func (p *JSONRPC) GetHead(ctx context.Context) (*core.GlobalBlockID, error) {
	var response starknet.BlockHashAndNumber
	if err := p.call(ctx, &response, "starknet_blockHashAndNumber"); err != nil {
		return nil, err
	}
	return &core.GlobalBlockID{
		Number: response.Number,
		Hash:   response.Hash,
	}, nil
}

func (p *JSONRPC) GetBlock(ctx context.Context, id BlockID) (core.BlockStatus, *core.Header, []core.Transaction, error) {
	var response starknet.Block
	if err := p.call(ctx, &response, "starknet_getBlockWithTxs", id); err != nil {
		return core.StatusUnspecified, nil, nil, err
	}

	// Consistency check before anything is returned: the answer's shape must
	// agree with what the query asked for.
	if id.IsPending() {
		if !response.IsPending() {
			return core.StatusUnspecified, nil, nil, ErrExpectedPendingBlock
		}
		return sn2core.AdaptPendingBlock(&response)
	}
	if response.IsPending() {
		return core.StatusUnspecified, nil, nil, ErrUnexpectedPendingBlock
	}
	return sn2core.AdaptBlock(&response)
}

func (p *JSONRPC) GetStateUpdate(ctx context.Context, id BlockID) (*core.StateUpdate, error) {
	var response starknet.StateUpdate
	if err := p.call(ctx, &response, "starknet_getStateUpdate", id); err != nil {
		return nil, err
	}
	return sn2core.AdaptStateUpdate(&response)
}

func (p *JSONRPC) GetTransactionReceipt(ctx context.Context, hash *felt.Felt) (*core.TransactionReceipt, error) {
	var response starknet.TransactionReceipt
	if err := p.call(ctx, &response, "starknet_getTransactionReceipt", hash); err != nil {
		return nil, err
	}
	return sn2core.AdaptTransactionReceipt(&response)
}

func (p *JSONRPC) call(ctx context.Context, result any, method string, args ...any) error {
	start := time.Now()
	err := p.client.CallContext(ctx, result, method, args...)
	p.listener.OnRequest(method, time.Since(start), err)
	if err == nil {
		return nil
	}

	p.log.Debugw("Backend request failed", "method", method, "err", err)

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == blockNotFoundCode {
		return fmt.Errorf("%s: %w", method, ErrBlockNotFound)
	}
	if errors.Is(err, rpc.ErrNoResult) {
		// Some backends answer a null result instead of the not-found code.
		return fmt.Errorf("%s: %w", method, ErrBlockNotFound)
	}
	return fmt.Errorf("%s: %w", method, err)
}
