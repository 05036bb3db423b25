package starknet

import "github.com/starkstream/node/core/felt"

// StateUpdate object returned by the backend in JSON format for the
// "starknet_getStateUpdate" endpoint.
type StateUpdate struct {
	BlockHash *felt.Felt `json:"block_hash,omitempty"`
	NewRoot   *felt.Felt `json:"new_root"`
	OldRoot   *felt.Felt `json:"old_root"`
	StateDiff StateDiff  `json:"state_diff"`
}

type StateDiff struct {
	StorageDiffs           []ContractStorageDiff `json:"storage_diffs"`
	DeclaredContractHashes []*felt.Felt          `json:"declared_contract_hashes"`
	DeployedContracts      []DeployedContract    `json:"deployed_contracts"`
	Nonces                 []ContractNonce       `json:"nonces"`
}

type ContractStorageDiff struct {
	Address        *felt.Felt     `json:"address"`
	StorageEntries []StorageEntry `json:"storage_entries"`
}

type StorageEntry struct {
	Key   *felt.Felt `json:"key"`
	Value *felt.Felt `json:"value"`
}

type DeployedContract struct {
	Address   *felt.Felt `json:"address"`
	ClassHash *felt.Felt `json:"class_hash"`
}

type ContractNonce struct {
	ContractAddress *felt.Felt `json:"contract_address"`
	Nonce           *felt.Felt `json:"nonce"`
}
