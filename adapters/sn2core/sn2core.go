// Package sn2core converts backend JSON-RPC response shapes into the
// canonical core entities. Every function is a pure mapping; list-valued
// fields keep the backend's ordering.
package sn2core

import (
	"errors"
	"fmt"

	"github.com/starkstream/node/core"
	"github.com/starkstream/node/core/felt"
	"github.com/starkstream/node/starknet"
)

// AdaptBlock maps a sealed block. The caller (the provider) has already
// checked that the response is not the pending shape.
func AdaptBlock(response *starknet.Block) (core.BlockStatus, *core.Header, []core.Transaction, error) {
	if response == nil {
		return core.StatusUnspecified, nil, nil, errors.New("nil block")
	}
	if response.IsPending() {
		return core.StatusUnspecified, nil, nil, errors.New("sealed block without status")
	}
	if response.Number == nil {
		return core.StatusUnspecified, nil, nil, errors.New("sealed block without number")
	}

	txns, err := adaptTransactions(response.Transactions)
	if err != nil {
		return core.StatusUnspecified, nil, nil, err
	}

	header := &core.Header{
		Hash:             response.Hash,
		ParentHash:       response.ParentHash,
		Number:           response.Number,
		SequencerAddress: response.SequencerAddress,
		NewRoot:          response.NewRoot,
		Timestamp:        response.Timestamp,
	}
	return AdaptBlockStatus(*response.Status), header, txns, nil
}

// AdaptPendingBlock maps the pending-block shape. The fields the backend does
// not supply yet (hash, number, new root) stay absent in the canonical
// header; core2grpc turns absence into the wire sentinels.
func AdaptPendingBlock(response *starknet.Block) (core.BlockStatus, *core.Header, []core.Transaction, error) {
	if response == nil {
		return core.StatusUnspecified, nil, nil, errors.New("nil block")
	}

	txns, err := adaptTransactions(response.Transactions)
	if err != nil {
		return core.StatusUnspecified, nil, nil, err
	}

	header := &core.Header{
		ParentHash:       response.ParentHash,
		SequencerAddress: response.SequencerAddress,
		Timestamp:        response.Timestamp,
	}
	return core.StatusPending, header, txns, nil
}

func AdaptBlockStatus(status starknet.BlockStatus) core.BlockStatus {
	switch status {
	case starknet.StatusPending:
		return core.StatusPending
	case starknet.StatusAcceptedOnL2:
		return core.StatusAcceptedOnL2
	case starknet.StatusAcceptedOnL1:
		return core.StatusAcceptedOnL1
	case starknet.StatusRejected:
		return core.StatusRejected
	default:
		return core.StatusUnspecified
	}
}

func adaptTransactions(transactions []*starknet.Transaction) ([]core.Transaction, error) {
	txns := make([]core.Transaction, len(transactions))
	for i, txn := range transactions {
		var err error
		txns[i], err = AdaptTransaction(txn)
		if err != nil {
			return nil, err
		}
	}
	return txns, nil
}

// AdaptTransaction covers every transaction kind the backend reports.
func AdaptTransaction(transaction *starknet.Transaction) (core.Transaction, error) {
	if transaction == nil {
		return nil, errors.New("nil transaction")
	}

	switch transaction.Type {
	case starknet.TxnInvoke:
		return AdaptInvokeTransaction(transaction), nil
	case starknet.TxnDeploy:
		return AdaptDeployTransaction(transaction), nil
	case starknet.TxnDeclare:
		return AdaptDeclareTransaction(transaction), nil
	case starknet.TxnL1Handler:
		return AdaptL1HandlerTransaction(transaction), nil
	case starknet.TxnDeployAccount:
		return AdaptDeployAccountTransaction(transaction), nil
	default:
		return nil, fmt.Errorf("unknown transaction type %q", transaction.Type)
	}
}

// AdaptInvokeTransaction splits invoke v0 and v1 on the version field.
func AdaptInvokeTransaction(t *starknet.Transaction) core.Transaction {
	if adaptVersion(t.Version) == 0 {
		return &core.InvokeTransactionV0{
			TransactionMeta:    adaptMeta(t),
			ContractAddress:    t.ContractAddress,
			EntryPointSelector: t.EntryPointSelector,
			CallData:           adaptFeltSlice(t.CallData),
		}
	}
	return &core.InvokeTransactionV1{
		TransactionMeta: adaptMeta(t),
		SenderAddress:   t.SenderAddress,
		CallData:        adaptFeltSlice(t.CallData),
	}
}

// AdaptDeployTransaction populates only hash and version in the meta: the
// deploy kind predates fees, signatures and nonces.
func AdaptDeployTransaction(t *starknet.Transaction) *core.DeployTransaction {
	return &core.DeployTransaction{
		TransactionMeta: core.TransactionMeta{
			Hash:    t.Hash,
			Version: adaptVersion(t.Version),
		},
		ClassHash:           t.ClassHash,
		ContractAddressSalt: t.ContractAddressSalt,
		ConstructorCallData: adaptFeltSlice(t.ConstructorCallData),
	}
}

func AdaptDeclareTransaction(t *starknet.Transaction) *core.DeclareTransaction {
	return &core.DeclareTransaction{
		TransactionMeta: adaptMeta(t),
		ClassHash:       t.ClassHash,
		SenderAddress:   t.SenderAddress,
	}
}

// AdaptL1HandlerTransaction populates only hash and version in the meta, as
// with deploys: L1 handler transactions carry no fee, signature or nonce.
func AdaptL1HandlerTransaction(t *starknet.Transaction) *core.L1HandlerTransaction {
	return &core.L1HandlerTransaction{
		TransactionMeta: core.TransactionMeta{
			Hash:    t.Hash,
			Version: adaptVersion(t.Version),
		},
		ContractAddress:    t.ContractAddress,
		EntryPointSelector: t.EntryPointSelector,
		CallData:           adaptFeltSlice(t.CallData),
	}
}

func AdaptDeployAccountTransaction(t *starknet.Transaction) *core.DeployAccountTransaction {
	return &core.DeployAccountTransaction{
		TransactionMeta:     adaptMeta(t),
		ContractAddressSalt: t.ContractAddressSalt,
		ClassHash:           t.ClassHash,
		ConstructorCallData: adaptFeltSlice(t.ConstructorCallData),
	}
}

// AdaptTransactionReceipt covers every receipt kind, confirmed or pending.
// The contract-address rule is structural: only the deploy kinds pass an
// address into the shared assembly.
func AdaptTransactionReceipt(response *starknet.TransactionReceipt) (*core.TransactionReceipt, error) {
	if response == nil {
		return nil, errors.New("nil receipt")
	}

	switch response.Type {
	case starknet.TxnDeploy, starknet.TxnDeployAccount:
		return adaptReceipt(response, response.ContractAddress), nil
	case starknet.TxnInvoke, starknet.TxnDeclare, starknet.TxnL1Handler:
		return adaptReceipt(response, nil), nil
	default:
		return nil, fmt.Errorf("unknown receipt type %q", response.Type)
	}
}

// adaptReceipt assembles a canonical receipt from the fields every kind
// shares. Transaction index is not reported by the JSON-RPC backend, so it is
// recorded as 0 for every kind.
func adaptReceipt(response *starknet.TransactionReceipt, contractAddress *felt.Felt) *core.TransactionReceipt {
	messages := make([]*core.L2ToL1Message, len(response.MessagesSent))
	for i, msg := range response.MessagesSent {
		messages[i] = AdaptL2ToL1Message(msg)
	}

	events := make([]*core.Event, len(response.Events))
	for i, event := range response.Events {
		events[i] = AdaptEvent(event)
	}

	return &core.TransactionReceipt{
		TransactionIndex: 0,
		TransactionHash:  response.TransactionHash,
		ActualFee:        response.ActualFee,
		L2ToL1Messages:   messages,
		Events:           events,
		ContractAddress:  contractAddress,
	}
}

func AdaptEvent(response *starknet.Event) *core.Event {
	if response == nil {
		return nil
	}
	return &core.Event{
		FromAddress: response.FromAddress,
		Keys:        response.Keys,
		Data:        response.Data,
	}
}

func AdaptL2ToL1Message(response *starknet.MsgToL1) *core.L2ToL1Message {
	if response == nil {
		return nil
	}
	return &core.L2ToL1Message{
		ToAddress: response.ToAddress,
		Payload:   response.Payload,
	}
}

// AdaptStateUpdate maps a complete state update; a missing root means the
// fetch did not yield a whole diff and is rejected.
func AdaptStateUpdate(response *starknet.StateUpdate) (*core.StateUpdate, error) {
	if response == nil {
		return nil, errors.New("nil state update")
	}
	if response.NewRoot == nil || response.OldRoot == nil {
		return nil, errors.New("state update without roots")
	}

	return &core.StateUpdate{
		NewRoot:   response.NewRoot,
		OldRoot:   response.OldRoot,
		StateDiff: AdaptStateDiff(&response.StateDiff),
	}, nil
}

func AdaptStateDiff(response *starknet.StateDiff) *core.StateDiff {
	storageDiffs := make([]*core.StorageDiff, len(response.StorageDiffs))
	for i, diff := range response.StorageDiffs {
		entries := make([]*core.StorageEntry, len(diff.StorageEntries))
		for j, entry := range diff.StorageEntries {
			entries[j] = &core.StorageEntry{
				Key:   entry.Key,
				Value: entry.Value,
			}
		}
		storageDiffs[i] = &core.StorageDiff{
			ContractAddress: diff.Address,
			Entries:         entries,
		}
	}

	deployed := make([]*core.DeployedContract, len(response.DeployedContracts))
	for i, contract := range response.DeployedContracts {
		deployed[i] = &core.DeployedContract{
			Address:   contract.Address,
			ClassHash: contract.ClassHash,
		}
	}

	nonces := make([]*core.NonceUpdate, len(response.Nonces))
	for i, nonce := range response.Nonces {
		nonces[i] = &core.NonceUpdate{
			ContractAddress: nonce.ContractAddress,
			Nonce:           nonce.Nonce,
		}
	}

	return &core.StateDiff{
		StorageDiffs:      storageDiffs,
		DeclaredClasses:   response.DeclaredContractHashes,
		DeployedContracts: deployed,
		Nonces:            nonces,
	}
}

func adaptMeta(t *starknet.Transaction) core.TransactionMeta {
	return core.TransactionMeta{
		Hash:      t.Hash,
		MaxFee:    t.MaxFee,
		Signature: adaptFeltSlice(t.Signature),
		Nonce:     t.Nonce,
		Version:   adaptVersion(t.Version),
	}
}

func adaptFeltSlice(s *[]*felt.Felt) []*felt.Felt {
	if s == nil {
		return nil
	}
	return *s
}

func adaptVersion(version *felt.Felt) uint64 {
	if version == nil {
		return 0
	}
	return version.Uint64()
}
