package core

import "github.com/starkstream/node/core/felt"

type Event struct {
	FromAddress *felt.Felt
	Keys        []*felt.Felt
	Data        []*felt.Felt
}

type L2ToL1Message struct {
	ToAddress *felt.Felt
	Payload   []*felt.Felt
}

// TransactionReceipt is the canonical receipt. ContractAddress is set only
// for Deploy and DeployAccount receipts. TransactionIndex is always 0 for
// receipts sourced from a JSON-RPC backend, which does not report the
// transaction's position in its block.
type TransactionReceipt struct {
	TransactionIndex uint64
	TransactionHash  *felt.Felt
	ActualFee        *felt.Felt
	L2ToL1Messages   []*L2ToL1Message
	Events           []*Event
	ContractAddress  *felt.Felt
}
