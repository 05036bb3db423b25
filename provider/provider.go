// Package provider talks to a StarkNet chain backend and normalizes its
// responses into the canonical core entities.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/starkstream/node/core"
	"github.com/starkstream/node/core/felt"
)

var (
	// ErrBlockNotFound classifies backend answers for blocks that have not
	// been produced yet. Callers branch on this one predicate and treat every
	// other failure as opaque.
	ErrBlockNotFound = errors.New("block not found")

	// ErrUnexpectedPendingBlock is returned when a non-pending query receives
	// the pending-block shape.
	ErrUnexpectedPendingBlock = errors.New("received unexpected pending block")

	// ErrExpectedPendingBlock is returned when a pending query receives a
	// sealed block.
	ErrExpectedPendingBlock = errors.New("expected pending block, received non pending block")

	// ErrInvalidBlockID is returned when a block id cannot be converted into
	// a backend selector.
	ErrInvalidBlockID = errors.New("invalid block id")
)

// IsBlockNotFound reports whether err means the queried block does not exist
// yet. Ingestion uses it to tell "not yet produced" from genuine failure.
func IsBlockNotFound(err error) bool {
	return errors.Is(err, ErrBlockNotFound)
}

// Provider is the capability set a chain backend must implement. One
// implementation exists per backend kind; callers never depend on a concrete
// type.
type Provider interface {
	// GetHead returns the most recent accepted block's number and hash.
	GetHead(ctx context.Context) (*core.GlobalBlockID, error)

	// GetBlock fetches a block with full transaction bodies. A pending query
	// answered with a sealed block (or the reverse) fails with a mismatch
	// error instead of returning misleading data.
	GetBlock(ctx context.Context, id BlockID) (core.BlockStatus, *core.Header, []core.Transaction, error)

	// GetStateUpdate fetches the state update for a block.
	GetStateUpdate(ctx context.Context, id BlockID) (*core.StateUpdate, error)

	// GetTransactionReceipt fetches the receipt for a transaction.
	GetTransactionReceipt(ctx context.Context, hash *felt.Felt) (*core.TransactionReceipt, error)
}

// EventListener is notified about every backend request. Implementations must
// not block.
type EventListener interface {
	OnRequest(method string, took time.Duration, err error)
}

// SelectiveListener is an EventListener running only the callbacks that are
// set.
type SelectiveListener struct {
	OnRequestCb func(method string, took time.Duration, err error)
}

func (l *SelectiveListener) OnRequest(method string, took time.Duration, err error) {
	if l.OnRequestCb != nil {
		l.OnRequestCb(method, took, err)
	}
}

type blockIDKind uint8

const (
	latest blockIDKind = iota + 1
	pending
	byHash
	byNumber
)

// BlockID selects which block a query targets: latest, pending, by hash or by
// number. Constructed per query and consumed immediately.
type BlockID struct {
	kind   blockIDKind
	hash   *felt.Felt
	number uint64
}

func LatestBlockID() BlockID {
	return BlockID{kind: latest}
}

func PendingBlockID() BlockID {
	return BlockID{kind: pending}
}

func HashBlockID(hash *felt.Felt) BlockID {
	return BlockID{kind: byHash, hash: hash}
}

func NumberBlockID(number uint64) BlockID {
	return BlockID{kind: byNumber, number: number}
}

func (id BlockID) IsPending() bool {
	return id.kind == pending
}

// MarshalJSON produces the backend block selector.
func (id BlockID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case latest:
		return json.Marshal("latest")
	case pending:
		return json.Marshal("pending")
	case byHash:
		if id.hash == nil {
			return nil, ErrInvalidBlockID
		}
		return json.Marshal(map[string]*felt.Felt{"block_hash": id.hash})
	case byNumber:
		return json.Marshal(map[string]uint64{"block_number": id.number})
	default:
		return nil, ErrInvalidBlockID
	}
}

func (id BlockID) String() string {
	switch id.kind {
	case latest:
		return "latest"
	case pending:
		return "pending"
	case byHash:
		return id.hash.String()
	case byNumber:
		return "#" + strconv.FormatUint(id.number, 10)
	default:
		return "<invalid>"
	}
}
