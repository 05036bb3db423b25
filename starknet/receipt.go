package starknet

import "github.com/starkstream/node/core/felt"

// TransactionReceipt object returned by the backend in JSON format for the
// "starknet_getTransactionReceipt" endpoint. Receipts for pending
// transactions omit the status and block fields. ContractAddress appears only
// on DEPLOY and DEPLOY_ACCOUNT receipts.
type TransactionReceipt struct {
	Type            TransactionType `json:"type"`
	TransactionHash *felt.Felt      `json:"transaction_hash"`
	ActualFee       *felt.Felt      `json:"actual_fee"`
	Status          *BlockStatus    `json:"status,omitempty"`
	BlockHash       *felt.Felt      `json:"block_hash,omitempty"`
	BlockNumber     *uint64         `json:"block_number,omitempty"`
	MessagesSent    []*MsgToL1      `json:"messages_sent"`
	Events          []*Event        `json:"events"`
	ContractAddress *felt.Felt      `json:"contract_address,omitempty"`
}
