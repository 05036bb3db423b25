package core

import (
	"fmt"

	"github.com/starkstream/node/core/felt"
)

type BlockStatus uint8

const (
	StatusUnspecified BlockStatus = iota
	StatusPending
	StatusAcceptedOnL2
	StatusAcceptedOnL1
	StatusRejected
)

func (s BlockStatus) String() string {
	switch s {
	case StatusUnspecified:
		return "UNSPECIFIED"
	case StatusPending:
		return "PENDING"
	case StatusAcceptedOnL2:
		return "ACCEPTED_ON_L2"
	case StatusAcceptedOnL1:
		return "ACCEPTED_ON_L1"
	case StatusRejected:
		return "REJECTED"
	default:
		return "<unknown>"
	}
}

// GlobalBlockID identifies one accepted block unambiguously. Used by
// downstream ingestion as a cursor.
type GlobalBlockID struct {
	Number uint64
	Hash   *felt.Felt
}

func (id *GlobalBlockID) String() string {
	return fmt.Sprintf("%d/%s", id.Number, id.Hash)
}

// Header is the canonical block header. Hash, Number and NewRoot are nil for
// pending blocks; the wire-level sentinels for these fields are produced in
// one place only, the core2grpc adapter.
type Header struct {
	Hash             *felt.Felt
	ParentHash       *felt.Felt
	Number           *uint64
	SequencerAddress *felt.Felt
	NewRoot          *felt.Felt
	Timestamp        uint64
}

func (h *Header) IsPending() bool {
	return h.Hash == nil
}

// Block pairs a header with its ordered transaction list. Transaction index
// within the block is the slice position.
type Block struct {
	Header       *Header
	Transactions []Transaction
}
