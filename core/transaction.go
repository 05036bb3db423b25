package core

import "github.com/starkstream/node/core/felt"

// TransactionMeta carries the fields shared by every transaction kind. Kinds
// that predate a field (Deploy and L1Handler have no fee, signature or nonce)
// leave it at the zero value rather than omitting it.
type TransactionMeta struct {
	Hash      *felt.Felt
	MaxFee    *felt.Felt
	Signature []*felt.Felt
	Nonce     *felt.Felt
	Version   uint64
}

// Meta makes every type embedding TransactionMeta a Transaction.
func (m *TransactionMeta) Meta() *TransactionMeta {
	return m
}

// Transaction is the closed set of canonical transaction kinds:
// InvokeTransactionV0, InvokeTransactionV1, DeployTransaction,
// DeclareTransaction, L1HandlerTransaction and DeployAccountTransaction.
type Transaction interface {
	Meta() *TransactionMeta
}

var (
	_ Transaction = (*InvokeTransactionV0)(nil)
	_ Transaction = (*InvokeTransactionV1)(nil)
	_ Transaction = (*DeployTransaction)(nil)
	_ Transaction = (*DeclareTransaction)(nil)
	_ Transaction = (*L1HandlerTransaction)(nil)
	_ Transaction = (*DeployAccountTransaction)(nil)
)

type InvokeTransactionV0 struct {
	TransactionMeta
	ContractAddress    *felt.Felt
	EntryPointSelector *felt.Felt
	CallData           []*felt.Felt
}

type InvokeTransactionV1 struct {
	TransactionMeta
	SenderAddress *felt.Felt
	CallData      []*felt.Felt
}

type DeployTransaction struct {
	TransactionMeta
	ClassHash           *felt.Felt
	ContractAddressSalt *felt.Felt
	ConstructorCallData []*felt.Felt
}

type DeclareTransaction struct {
	TransactionMeta
	ClassHash     *felt.Felt
	SenderAddress *felt.Felt
}

type L1HandlerTransaction struct {
	TransactionMeta
	ContractAddress    *felt.Felt
	EntryPointSelector *felt.Felt
	CallData           []*felt.Felt
}

type DeployAccountTransaction struct {
	TransactionMeta
	ContractAddressSalt *felt.Felt
	ClassHash           *felt.Felt
	ConstructorCallData []*felt.Felt
}
