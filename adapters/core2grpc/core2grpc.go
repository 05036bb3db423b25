// Package core2grpc encodes canonical entities into their wire
// representation. It is the only place pending-block sentinels are produced:
// a pending header gets the all-zero hash and the maximum block number.
package core2grpc

import (
	"fmt"
	"math"
	"time"

	"github.com/starkstream/node/core"
	"github.com/starkstream/node/core/felt"
	"github.com/starkstream/node/grpc/gen"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// PendingBlockNumber marks a pending block on the wire.
const PendingBlockNumber = uint64(math.MaxUint64)

func AdaptFelt(f *felt.Felt) *gen.FieldElement {
	if f == nil {
		return nil
	}
	b := f.Bytes()
	return &gen.FieldElement{Value: b[:]}
}

func adaptFeltSlice(sl []*felt.Felt) []*gen.FieldElement {
	out := make([]*gen.FieldElement, len(sl))
	for i, f := range sl {
		out[i] = AdaptFelt(f)
	}
	return out
}

func AdaptBlockStatus(status core.BlockStatus) gen.BlockStatus {
	switch status {
	case core.StatusPending:
		return gen.BlockStatus_BLOCK_STATUS_PENDING
	case core.StatusAcceptedOnL2:
		return gen.BlockStatus_BLOCK_STATUS_ACCEPTED_ON_L2
	case core.StatusAcceptedOnL1:
		return gen.BlockStatus_BLOCK_STATUS_ACCEPTED_ON_L1
	case core.StatusRejected:
		return gen.BlockStatus_BLOCK_STATUS_REJECTED
	default:
		return gen.BlockStatus_BLOCK_STATUS_UNSPECIFIED
	}
}

// AdaptBlockHeader encodes a header. Absent confirmed fields become
// sentinels: the zero felt for the hash, PendingBlockNumber for the number.
// An absent new root stays absent.
func AdaptBlockHeader(header *core.Header, status core.BlockStatus) *gen.BlockHeader {
	hash := AdaptFelt(header.Hash)
	if hash == nil {
		hash = AdaptFelt(&felt.Zero)
	}
	number := PendingBlockNumber
	if header.Number != nil {
		number = *header.Number
	}

	return &gen.BlockHeader{
		BlockHash:        hash,
		ParentBlockHash:  AdaptFelt(header.ParentHash),
		BlockNumber:      number,
		SequencerAddress: AdaptFelt(header.SequencerAddress),
		NewRoot:          AdaptFelt(header.NewRoot),
		Timestamp:        timestamppb.New(time.Unix(int64(header.Timestamp), 0)),
		Status:           AdaptBlockStatus(status),
	}
}

func AdaptTransaction(transaction core.Transaction) (*gen.Transaction, error) {
	meta := transaction.Meta()
	out := &gen.Transaction{
		Common: &gen.TransactionCommon{
			Hash:      AdaptFelt(meta.Hash),
			MaxFee:    AdaptFelt(meta.MaxFee),
			Signature: adaptFeltSlice(meta.Signature),
			Nonce:     AdaptFelt(meta.Nonce),
			Version:   meta.Version,
		},
	}

	switch t := transaction.(type) {
	case *core.InvokeTransactionV0:
		out.Transaction = &gen.Transaction_InvokeV0{
			InvokeV0: &gen.InvokeTransactionV0{
				ContractAddress:    AdaptFelt(t.ContractAddress),
				EntryPointSelector: AdaptFelt(t.EntryPointSelector),
				Calldata:           adaptFeltSlice(t.CallData),
			},
		}
	case *core.InvokeTransactionV1:
		out.Transaction = &gen.Transaction_InvokeV1{
			InvokeV1: &gen.InvokeTransactionV1{
				SenderAddress: AdaptFelt(t.SenderAddress),
				Calldata:      adaptFeltSlice(t.CallData),
			},
		}
	case *core.DeployTransaction:
		out.Transaction = &gen.Transaction_Deploy{
			Deploy: &gen.DeployTransaction{
				ConstructorCalldata: adaptFeltSlice(t.ConstructorCallData),
				ContractAddressSalt: AdaptFelt(t.ContractAddressSalt),
				ClassHash:           AdaptFelt(t.ClassHash),
			},
		}
	case *core.DeclareTransaction:
		out.Transaction = &gen.Transaction_Declare{
			Declare: &gen.DeclareTransaction{
				ClassHash:     AdaptFelt(t.ClassHash),
				SenderAddress: AdaptFelt(t.SenderAddress),
			},
		}
	case *core.L1HandlerTransaction:
		out.Transaction = &gen.Transaction_L1Handler{
			L1Handler: &gen.L1HandlerTransaction{
				ContractAddress:    AdaptFelt(t.ContractAddress),
				EntryPointSelector: AdaptFelt(t.EntryPointSelector),
				Calldata:           adaptFeltSlice(t.CallData),
			},
		}
	case *core.DeployAccountTransaction:
		out.Transaction = &gen.Transaction_DeployAccount{
			DeployAccount: &gen.DeployAccountTransaction{
				ConstructorCalldata: adaptFeltSlice(t.ConstructorCallData),
				ContractAddressSalt: AdaptFelt(t.ContractAddressSalt),
				ClassHash:           AdaptFelt(t.ClassHash),
			},
		}
	default:
		return nil, fmt.Errorf("unknown transaction type %T", transaction)
	}

	return out, nil
}

func AdaptEvent(event *core.Event) *gen.Event {
	return &gen.Event{
		FromAddress: AdaptFelt(event.FromAddress),
		Keys:        adaptFeltSlice(event.Keys),
		Data:        adaptFeltSlice(event.Data),
	}
}

func AdaptL2ToL1Message(msg *core.L2ToL1Message) *gen.L2ToL1Message {
	return &gen.L2ToL1Message{
		ToAddress: AdaptFelt(msg.ToAddress),
		Payload:   adaptFeltSlice(msg.Payload),
	}
}

func AdaptTransactionReceipt(receipt *core.TransactionReceipt) *gen.TransactionReceipt {
	messages := make([]*gen.L2ToL1Message, len(receipt.L2ToL1Messages))
	for i, msg := range receipt.L2ToL1Messages {
		messages[i] = AdaptL2ToL1Message(msg)
	}
	events := make([]*gen.Event, len(receipt.Events))
	for i, event := range receipt.Events {
		events[i] = AdaptEvent(event)
	}

	return &gen.TransactionReceipt{
		TransactionHash:  AdaptFelt(receipt.TransactionHash),
		TransactionIndex: receipt.TransactionIndex,
		ActualFee:        AdaptFelt(receipt.ActualFee),
		L2ToL1Messages:   messages,
		Events:           events,
		ContractAddress:  AdaptFelt(receipt.ContractAddress),
	}
}

func AdaptStateDiff(diff *core.StateDiff) *gen.StateDiff {
	storageDiffs := make([]*gen.StorageDiff, len(diff.StorageDiffs))
	for i, sd := range diff.StorageDiffs {
		entries := make([]*gen.StorageEntry, len(sd.Entries))
		for j, entry := range sd.Entries {
			entries[j] = &gen.StorageEntry{
				Key:   AdaptFelt(entry.Key),
				Value: AdaptFelt(entry.Value),
			}
		}
		storageDiffs[i] = &gen.StorageDiff{
			ContractAddress: AdaptFelt(sd.ContractAddress),
			StorageEntries:  entries,
		}
	}

	deployed := make([]*gen.DeployedContract, len(diff.DeployedContracts))
	for i, dc := range diff.DeployedContracts {
		deployed[i] = &gen.DeployedContract{
			ContractAddress: AdaptFelt(dc.Address),
			ClassHash:       AdaptFelt(dc.ClassHash),
		}
	}

	nonces := make([]*gen.NonceUpdate, len(diff.Nonces))
	for i, nu := range diff.Nonces {
		nonces[i] = &gen.NonceUpdate{
			ContractAddress: AdaptFelt(nu.ContractAddress),
			Nonce:           AdaptFelt(nu.Nonce),
		}
	}

	return &gen.StateDiff{
		StorageDiffs:      storageDiffs,
		DeclaredClasses:   adaptFeltSlice(diff.DeclaredClasses),
		DeployedContracts: deployed,
		Nonces:            nonces,
	}
}

func AdaptStateUpdate(update *core.StateUpdate) *gen.StateUpdate {
	return &gen.StateUpdate{
		NewRoot:   AdaptFelt(update.NewRoot),
		OldRoot:   AdaptFelt(update.OldRoot),
		StateDiff: AdaptStateDiff(update.StateDiff),
	}
}

// AdaptBlock encodes a full block with its receipts and state update. The
// receipts and state update are optional.
func AdaptBlock(status core.BlockStatus, header *core.Header, transactions []core.Transaction,
	receipts []*core.TransactionReceipt, update *core.StateUpdate,
) (*gen.Block, error) {
	outTxs := make([]*gen.Transaction, len(transactions))
	for i, transaction := range transactions {
		adapted, err := AdaptTransaction(transaction)
		if err != nil {
			return nil, err
		}
		outTxs[i] = adapted
	}

	outReceipts := make([]*gen.TransactionReceipt, len(receipts))
	for i, receipt := range receipts {
		outReceipts[i] = AdaptTransactionReceipt(receipt)
	}

	out := &gen.Block{
		Header:       AdaptBlockHeader(header, status),
		Transactions: outTxs,
		Receipts:     outReceipts,
	}
	if update != nil {
		out.StateUpdate = AdaptStateUpdate(update)
	}
	return out, nil
}
