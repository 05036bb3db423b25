package starknet

import (
	"fmt"

	"github.com/starkstream/node/core/felt"
)

type TransactionType uint8

const (
	Invalid TransactionType = iota
	TxnDeclare
	TxnDeploy
	TxnDeployAccount
	TxnInvoke
	TxnL1Handler
)

func (t TransactionType) String() string {
	switch t {
	case TxnDeclare:
		return "DECLARE"
	case TxnDeploy:
		return "DEPLOY"
	case TxnDeployAccount:
		return "DEPLOY_ACCOUNT"
	case TxnInvoke:
		return "INVOKE"
	case TxnL1Handler:
		return "L1_HANDLER"
	default:
		return "<unknown>"
	}
}

func (t TransactionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TransactionType) UnmarshalText(data []byte) error {
	switch str := string(data); str {
	case "DECLARE":
		*t = TxnDeclare
	case "DEPLOY":
		*t = TxnDeploy
	case "DEPLOY_ACCOUNT":
		*t = TxnDeployAccount
	case "INVOKE", "INVOKE_FUNCTION":
		*t = TxnInvoke
	case "L1_HANDLER":
		*t = TxnL1Handler
	default:
		return fmt.Errorf("unknown TransactionType %q", str)
	}
	return nil
}

// Transaction object returned by the backend in JSON format for multiple
// endpoints. One struct covers every kind; the type tag selects which fields
// are meaningful. Invoke v0 and v1 share the tag and are told apart by the
// version field.
type Transaction struct {
	Hash                *felt.Felt      `json:"transaction_hash,omitempty"`
	Type                TransactionType `json:"type,omitempty"`
	Version             *felt.Felt      `json:"version,omitempty"`
	MaxFee              *felt.Felt      `json:"max_fee,omitempty"`
	Signature           *[]*felt.Felt   `json:"signature,omitempty"`
	Nonce               *felt.Felt      `json:"nonce,omitempty"`
	ContractAddress     *felt.Felt      `json:"contract_address,omitempty"`
	ContractAddressSalt *felt.Felt      `json:"contract_address_salt,omitempty"`
	ClassHash           *felt.Felt      `json:"class_hash,omitempty"`
	ConstructorCallData *[]*felt.Felt   `json:"constructor_calldata,omitempty"`
	SenderAddress       *felt.Felt      `json:"sender_address,omitempty"`
	CallData            *[]*felt.Felt   `json:"calldata,omitempty"`
	EntryPointSelector  *felt.Felt      `json:"entry_point_selector,omitempty"`
}

type Event struct {
	FromAddress *felt.Felt   `json:"from_address"`
	Keys        []*felt.Felt `json:"keys"`
	Data        []*felt.Felt `json:"data"`
}

type MsgToL1 struct {
	ToAddress *felt.Felt   `json:"to_address"`
	Payload   []*felt.Felt `json:"payload"`
}
