package starknet

import (
	"fmt"

	"github.com/starkstream/node/core/felt"
)

type BlockStatus uint8

const (
	StatusPending BlockStatus = iota + 1
	StatusAcceptedOnL2
	StatusAcceptedOnL1
	StatusRejected
)

func (s BlockStatus) String() string {
	switch s {
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

func (s BlockStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *BlockStatus) UnmarshalText(data []byte) error {
	switch str := string(data); str {
	case "PENDING":
		*s = StatusPending
	case "ACCEPTED_ON_L2":
		*s = StatusAcceptedOnL2
	case "ACCEPTED_ON_L1":
		*s = StatusAcceptedOnL1
	case "REJECTED":
		*s = StatusRejected
	default:
		return fmt.Errorf("unknown BlockStatus %q", str)
	}
	return nil
}

// Block object returned by the backend in JSON format for the
// "starknet_getBlockWithTxs" endpoint. The pending variant omits the status,
// hash, number and new-root fields, so those are pointers here.
type Block struct {
	Status           *BlockStatus   `json:"status,omitempty"`
	Hash             *felt.Felt     `json:"block_hash,omitempty"`
	ParentHash       *felt.Felt     `json:"parent_hash"`
	Number           *uint64        `json:"block_number,omitempty"`
	NewRoot          *felt.Felt     `json:"new_root,omitempty"`
	SequencerAddress *felt.Felt     `json:"sequencer_address"`
	Timestamp        uint64         `json:"timestamp"`
	Transactions     []*Transaction `json:"transactions"`
}

// IsPending reports whether the backend answered with the pending-block
// shape. A sealed block always carries a status.
func (b *Block) IsPending() bool {
	return b.Status == nil
}

// BlockHashAndNumber object returned by the backend for the
// "starknet_blockHashAndNumber" endpoint.
type BlockHashAndNumber struct {
	Hash   *felt.Felt `json:"block_hash"`
	Number uint64     `json:"block_number"`
}
