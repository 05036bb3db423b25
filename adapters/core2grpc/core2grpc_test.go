package core2grpc_test

import (
	"math"
	"testing"
	"time"

	"github.com/starkstream/node/adapters/core2grpc"
	"github.com/starkstream/node/core"
	"github.com/starkstream/node/core/felt"
	"github.com/starkstream/node/grpc/gen"
	"github.com/starkstream/node/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptFelt(t *testing.T) {
	assert.Nil(t, core2grpc.AdaptFelt(nil))

	adapted := core2grpc.AdaptFelt(utils.HexToFelt(t, "0xcafebabe"))
	require.Len(t, adapted.Value, felt.Bytes)
	assert.Equal(t, []byte{0xca, 0xfe, 0xba, 0xbe}, adapted.Value[felt.Bytes-4:])
}

func TestAdaptBlockHeader(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		header := &core.Header{
			Hash:             utils.HexToFelt(t, "0x1"),
			ParentHash:       utils.HexToFelt(t, "0x2"),
			Number:           utils.Ptr(uint64(100)),
			SequencerAddress: utils.HexToFelt(t, "0x3"),
			NewRoot:          utils.HexToFelt(t, "0x4"),
			Timestamp:        1654588282,
		}

		adapted := core2grpc.AdaptBlockHeader(header, core.StatusAcceptedOnL2)
		assert.Equal(t, uint64(100), adapted.BlockNumber)
		assert.Equal(t, gen.BlockStatus_BLOCK_STATUS_ACCEPTED_ON_L2, adapted.Status)
		assert.NotNil(t, adapted.NewRoot)
		assert.Equal(t, time.Unix(1654588282, 0).UTC(), adapted.Timestamp.AsTime())
	})

	t.Run("pending sentinels", func(t *testing.T) {
		header := &core.Header{
			ParentHash:       utils.HexToFelt(t, "0x2"),
			SequencerAddress: utils.HexToFelt(t, "0x3"),
			Timestamp:        1654588282,
		}
		require.True(t, header.IsPending())

		adapted := core2grpc.AdaptBlockHeader(header, core.StatusPending)
		assert.Equal(t, uint64(math.MaxUint64), adapted.BlockNumber)
		assert.Equal(t, make([]byte, felt.Bytes), adapted.BlockHash.Value)
		assert.Nil(t, adapted.NewRoot)
		assert.Equal(t, gen.BlockStatus_BLOCK_STATUS_PENDING, adapted.Status)
	})
}

func TestAdaptTransaction(t *testing.T) {
	meta := core.TransactionMeta{
		Hash:      utils.HexToFelt(t, "0x1"),
		MaxFee:    utils.HexToFelt(t, "0x2"),
		Signature: []*felt.Felt{utils.HexToFelt(t, "0x3")},
		Nonce:     utils.HexToFelt(t, "0x4"),
		Version:   1,
	}

	t.Run("invoke v1", func(t *testing.T) {
		adapted, err := core2grpc.AdaptTransaction(&core.InvokeTransactionV1{
			TransactionMeta: meta,
			SenderAddress:   utils.HexToFelt(t, "0x5"),
			CallData:        []*felt.Felt{utils.HexToFelt(t, "0x6")},
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), adapted.Common.Version)
		invoke, ok := adapted.Transaction.(*gen.Transaction_InvokeV1)
		require.True(t, ok)
		assert.NotNil(t, invoke.InvokeV1.SenderAddress)
		assert.Len(t, invoke.InvokeV1.Calldata, 1)
	})

	t.Run("deploy account", func(t *testing.T) {
		adapted, err := core2grpc.AdaptTransaction(&core.DeployAccountTransaction{
			TransactionMeta:     meta,
			ContractAddressSalt: utils.HexToFelt(t, "0x7"),
			ClassHash:           utils.HexToFelt(t, "0x8"),
		})
		require.NoError(t, err)
		_, ok := adapted.Transaction.(*gen.Transaction_DeployAccount)
		assert.True(t, ok)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := core2grpc.AdaptTransaction(&unknownTransaction{})
		assert.Error(t, err)
	})
}

type unknownTransaction struct {
	core.TransactionMeta
}

func TestAdaptBlock(t *testing.T) {
	header := &core.Header{
		Hash:       utils.HexToFelt(t, "0x1"),
		ParentHash: utils.HexToFelt(t, "0x2"),
		Number:     utils.Ptr(uint64(3)),
	}
	transactions := []core.Transaction{
		&core.L1HandlerTransaction{
			TransactionMeta: core.TransactionMeta{Hash: utils.HexToFelt(t, "0x9")},
			ContractAddress: utils.HexToFelt(t, "0xa"),
		},
	}
	receipts := []*core.TransactionReceipt{
		{
			TransactionHash: utils.HexToFelt(t, "0x9"),
			ActualFee:       utils.HexToFelt(t, "0xb"),
		},
	}
	update := &core.StateUpdate{
		NewRoot: utils.HexToFelt(t, "0xc"),
		OldRoot: utils.HexToFelt(t, "0xd"),
		StateDiff: &core.StateDiff{
			DeclaredClasses: []*felt.Felt{utils.HexToFelt(t, "0xe")},
		},
	}

	adapted, err := core2grpc.AdaptBlock(core.StatusAcceptedOnL1, header, transactions, receipts, update)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), adapted.Header.BlockNumber)
	require.Len(t, adapted.Transactions, 1)
	require.Len(t, adapted.Receipts, 1)
	assert.Equal(t, uint64(0), adapted.Receipts[0].TransactionIndex)
	require.NotNil(t, adapted.StateUpdate)
	assert.Len(t, adapted.StateUpdate.StateDiff.DeclaredClasses, 1)
}
