package core

import "github.com/starkstream/node/core/felt"

// StateUpdate is produced whole from a state-update query, never partially
// populated.
type StateUpdate struct {
	NewRoot   *felt.Felt
	OldRoot   *felt.Felt
	StateDiff *StateDiff
}

type StateDiff struct {
	StorageDiffs      []*StorageDiff
	DeclaredClasses   []*felt.Felt
	DeployedContracts []*DeployedContract
	Nonces            []*NonceUpdate
}

// StorageDiff groups storage-cell updates by contract address.
type StorageDiff struct {
	ContractAddress *felt.Felt
	Entries         []*StorageEntry
}

type StorageEntry struct {
	Key   *felt.Felt
	Value *felt.Felt
}

type DeployedContract struct {
	Address   *felt.Felt
	ClassHash *felt.Felt
}

type NonceUpdate struct {
	ContractAddress *felt.Felt
	Nonce           *felt.Felt
}
