package sn2core_test

import (
	"testing"

	"github.com/starkstream/node/adapters/sn2core"
	"github.com/starkstream/node/core"
	"github.com/starkstream/node/core/felt"
	"github.com/starkstream/node/starknet"
	"github.com/starkstream/node/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptBlock(t *testing.T) {
	status := starknet.StatusAcceptedOnL2
	response := &starknet.Block{
		Status:           &status,
		Hash:             utils.HexToFelt(t, "0x47c3637b57c2b079b93c61539950c17e868a28f46cdef28f88521067f21e943"),
		ParentHash:       utils.HexToFelt(t, "0x2a70fb03fe363a2d6be843343a1d81ce6abeda1e9bd5cc6ad8fa9f45e30fdeb"),
		Number:           utils.Ptr(uint64(231579)),
		NewRoot:          utils.HexToFelt(t, "0x6a42d697b5b735eef03bb71841ed5099d57088f7b5eec8e356fe2601d5ba08f"),
		SequencerAddress: utils.HexToFelt(t, "0x46a89ae102987331d369645031b49c27738ed096f2789c24449966da4c6de6b"),
		Timestamp:        1654588282,
		Transactions: []*starknet.Transaction{
			{
				Type:               starknet.TxnInvoke,
				Hash:               utils.HexToFelt(t, "0x1"),
				Version:            new(felt.Felt),
				ContractAddress:    utils.HexToFelt(t, "0x2"),
				EntryPointSelector: utils.HexToFelt(t, "0x3"),
				CallData:           &[]*felt.Felt{utils.HexToFelt(t, "0x4")},
				Signature:          &[]*felt.Felt{utils.HexToFelt(t, "0x5")},
				MaxFee:             utils.HexToFelt(t, "0x6"),
			},
		},
	}

	gotStatus, header, body, err := sn2core.AdaptBlock(response)
	require.NoError(t, err)

	assert.Equal(t, core.StatusAcceptedOnL2, gotStatus)
	assert.Equal(t, response.Hash, header.Hash)
	assert.Equal(t, response.ParentHash, header.ParentHash)
	require.NotNil(t, header.Number)
	assert.Equal(t, uint64(231579), *header.Number)
	assert.Equal(t, response.NewRoot, header.NewRoot)
	assert.Equal(t, response.SequencerAddress, header.SequencerAddress)
	assert.Equal(t, response.Timestamp, header.Timestamp)
	assert.False(t, header.IsPending())
	require.Len(t, body, 1)

	t.Run("missing status", func(t *testing.T) {
		_, _, _, err := sn2core.AdaptBlock(&starknet.Block{})
		require.Error(t, err)
	})

	t.Run("missing number", func(t *testing.T) {
		s := starknet.StatusAcceptedOnL2
		_, _, _, err := sn2core.AdaptBlock(&starknet.Block{Status: &s})
		require.Error(t, err)
	})
}

func TestAdaptPendingBlock(t *testing.T) {
	response := &starknet.Block{
		ParentHash:       utils.HexToFelt(t, "0xaaaa"),
		SequencerAddress: utils.HexToFelt(t, "0xbbbb"),
		Timestamp:        1654588282,
		Transactions: []*starknet.Transaction{
			{
				Type:    starknet.TxnDeploy,
				Hash:    utils.HexToFelt(t, "0x1"),
				Version: new(felt.Felt),
			},
		},
	}

	status, header, body, err := sn2core.AdaptPendingBlock(response)
	require.NoError(t, err)

	assert.Equal(t, core.StatusPending, status)
	assert.Nil(t, header.Hash)
	assert.Nil(t, header.Number)
	assert.Nil(t, header.NewRoot)
	assert.True(t, header.IsPending())
	assert.Equal(t, response.ParentHash, header.ParentHash)
	assert.Equal(t, response.SequencerAddress, header.SequencerAddress)
	assert.Equal(t, response.Timestamp, header.Timestamp)
	require.Len(t, body, 1)
}

func TestAdaptTransaction(t *testing.T) {
	hash := utils.HexToFelt(t, "0x7c3637b57c2b079b93c61539950c17e868a28f46cdef28f88521067f21e943")
	maxFee := utils.HexToFelt(t, "0x2386f26fc10000")
	signature := []*felt.Felt{utils.HexToFelt(t, "0x71"), utils.HexToFelt(t, "0x72")}
	nonce := utils.HexToFelt(t, "0x9")

	t.Run("invoke v0", func(t *testing.T) {
		response := &starknet.Transaction{
			Type:               starknet.TxnInvoke,
			Hash:               hash,
			Version:            new(felt.Felt),
			MaxFee:             maxFee,
			Signature:          &signature,
			Nonce:              nonce,
			ContractAddress:    utils.HexToFelt(t, "0x11"),
			EntryPointSelector: utils.HexToFelt(t, "0x12"),
			CallData:           &[]*felt.Felt{utils.HexToFelt(t, "0x13")},
		}

		txn, err := sn2core.AdaptTransaction(response)
		require.NoError(t, err)

		invoke, ok := txn.(*core.InvokeTransactionV0)
		require.True(t, ok)
		assert.Equal(t, hash, invoke.Meta().Hash)
		assert.Equal(t, maxFee, invoke.Meta().MaxFee)
		assert.Equal(t, signature, invoke.Meta().Signature)
		assert.Equal(t, nonce, invoke.Meta().Nonce)
		assert.Equal(t, uint64(0), invoke.Meta().Version)
		assert.Equal(t, response.ContractAddress, invoke.ContractAddress)
		assert.Equal(t, response.EntryPointSelector, invoke.EntryPointSelector)
		assert.Equal(t, *response.CallData, invoke.CallData)
	})

	t.Run("invoke v1", func(t *testing.T) {
		response := &starknet.Transaction{
			Type:          starknet.TxnInvoke,
			Hash:          hash,
			Version:       felt.FromUint64(1),
			MaxFee:        maxFee,
			Signature:     &signature,
			Nonce:         nonce,
			SenderAddress: utils.HexToFelt(t, "0x21"),
			CallData:      &[]*felt.Felt{utils.HexToFelt(t, "0x22")},
		}

		txn, err := sn2core.AdaptTransaction(response)
		require.NoError(t, err)

		invoke, ok := txn.(*core.InvokeTransactionV1)
		require.True(t, ok)
		assert.Equal(t, hash, invoke.Meta().Hash)
		assert.Equal(t, uint64(1), invoke.Meta().Version)
		assert.Equal(t, response.SenderAddress, invoke.SenderAddress)
		assert.Equal(t, *response.CallData, invoke.CallData)
	})

	t.Run("deploy gets default meta", func(t *testing.T) {
		response := &starknet.Transaction{
			Type:                starknet.TxnDeploy,
			Hash:                hash,
			Version:             new(felt.Felt),
			ClassHash:           utils.HexToFelt(t, "0x31"),
			ContractAddressSalt: utils.HexToFelt(t, "0x32"),
			ConstructorCallData: &[]*felt.Felt{utils.HexToFelt(t, "0x33")},
		}

		txn, err := sn2core.AdaptTransaction(response)
		require.NoError(t, err)

		deploy, ok := txn.(*core.DeployTransaction)
		require.True(t, ok)
		assert.Equal(t, hash, deploy.Meta().Hash)
		assert.Nil(t, deploy.Meta().MaxFee)
		assert.Empty(t, deploy.Meta().Signature)
		assert.Nil(t, deploy.Meta().Nonce)
		assert.Equal(t, uint64(0), deploy.Meta().Version)
		assert.Equal(t, response.ClassHash, deploy.ClassHash)
		assert.Equal(t, response.ContractAddressSalt, deploy.ContractAddressSalt)
		assert.Equal(t, *response.ConstructorCallData, deploy.ConstructorCallData)
	})

	t.Run("declare", func(t *testing.T) {
		response := &starknet.Transaction{
			Type:          starknet.TxnDeclare,
			Hash:          hash,
			Version:       felt.FromUint64(1),
			MaxFee:        maxFee,
			Signature:     &signature,
			Nonce:         nonce,
			ClassHash:     utils.HexToFelt(t, "0x41"),
			SenderAddress: utils.HexToFelt(t, "0x42"),
		}

		txn, err := sn2core.AdaptTransaction(response)
		require.NoError(t, err)

		declare, ok := txn.(*core.DeclareTransaction)
		require.True(t, ok)
		assert.Equal(t, hash, declare.Meta().Hash)
		assert.Equal(t, maxFee, declare.Meta().MaxFee)
		assert.Equal(t, uint64(1), declare.Meta().Version)
		assert.Equal(t, response.ClassHash, declare.ClassHash)
		assert.Equal(t, response.SenderAddress, declare.SenderAddress)
	})

	t.Run("l1 handler gets default meta", func(t *testing.T) {
		response := &starknet.Transaction{
			Type:               starknet.TxnL1Handler,
			Hash:               hash,
			Version:            new(felt.Felt),
			ContractAddress:    utils.HexToFelt(t, "0x51"),
			EntryPointSelector: utils.HexToFelt(t, "0x52"),
			CallData:           &[]*felt.Felt{utils.HexToFelt(t, "0x53")},
		}

		txn, err := sn2core.AdaptTransaction(response)
		require.NoError(t, err)

		handler, ok := txn.(*core.L1HandlerTransaction)
		require.True(t, ok)
		assert.Equal(t, hash, handler.Meta().Hash)
		assert.Nil(t, handler.Meta().MaxFee)
		assert.Empty(t, handler.Meta().Signature)
		assert.Nil(t, handler.Meta().Nonce)
		assert.Equal(t, response.ContractAddress, handler.ContractAddress)
		assert.Equal(t, response.EntryPointSelector, handler.EntryPointSelector)
		assert.Equal(t, *response.CallData, handler.CallData)
	})

	t.Run("deploy account", func(t *testing.T) {
		response := &starknet.Transaction{
			Type:                starknet.TxnDeployAccount,
			Hash:                hash,
			Version:             felt.FromUint64(1),
			MaxFee:              maxFee,
			Signature:           &signature,
			Nonce:               nonce,
			ContractAddressSalt: utils.HexToFelt(t, "0x61"),
			ClassHash:           utils.HexToFelt(t, "0x62"),
			ConstructorCallData: &[]*felt.Felt{utils.HexToFelt(t, "0x63")},
		}

		txn, err := sn2core.AdaptTransaction(response)
		require.NoError(t, err)

		deploy, ok := txn.(*core.DeployAccountTransaction)
		require.True(t, ok)
		assert.Equal(t, hash, deploy.Meta().Hash)
		assert.Equal(t, maxFee, deploy.Meta().MaxFee)
		assert.Equal(t, response.ContractAddressSalt, deploy.ContractAddressSalt)
		assert.Equal(t, response.ClassHash, deploy.ClassHash)
		assert.Equal(t, *response.ConstructorCallData, deploy.ConstructorCallData)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := sn2core.AdaptTransaction(&starknet.Transaction{Hash: hash})
		require.Error(t, err)
	})
}

func TestAdaptTransactionReceipt(t *testing.T) {
	hash := utils.HexToFelt(t, "0x1b8ad9bd8bfbb693f2e77c7f2c3a9fb160a4e4a825df6f0e4b794bd4fd2ae4d")
	fee := utils.HexToFelt(t, "0x247aff6e224")
	address := utils.HexToFelt(t, "0x3deca8b1f4bd134ba943c81452d8cbbcfb8c02a5e7a81f2b2a056a4b5bc7d34")

	base := func(kind starknet.TransactionType) *starknet.TransactionReceipt {
		return &starknet.TransactionReceipt{
			Type:            kind,
			TransactionHash: hash,
			ActualFee:       fee,
			MessagesSent: []*starknet.MsgToL1{
				{
					ToAddress: utils.HexToFelt(t, "0x71"),
					Payload:   []*felt.Felt{utils.HexToFelt(t, "0x72"), utils.HexToFelt(t, "0x73")},
				},
			},
			Events: []*starknet.Event{
				{
					FromAddress: utils.HexToFelt(t, "0x81"),
					Keys:        []*felt.Felt{utils.HexToFelt(t, "0x82")},
					Data:        []*felt.Felt{utils.HexToFelt(t, "0x83")},
				},
			},
		}
	}

	withAddress := []starknet.TransactionType{starknet.TxnDeploy, starknet.TxnDeployAccount}
	withoutAddress := []starknet.TransactionType{starknet.TxnInvoke, starknet.TxnDeclare, starknet.TxnL1Handler}

	for _, kind := range withAddress {
		t.Run(kind.String(), func(t *testing.T) {
			response := base(kind)
			response.ContractAddress = address

			receipt, err := sn2core.AdaptTransactionReceipt(response)
			require.NoError(t, err)

			assert.Equal(t, hash, receipt.TransactionHash)
			assert.Equal(t, fee, receipt.ActualFee)
			assert.Equal(t, uint64(0), receipt.TransactionIndex)
			assert.Equal(t, address, receipt.ContractAddress)
			require.Len(t, receipt.L2ToL1Messages, 1)
			require.Len(t, receipt.Events, 1)
		})
	}

	for _, kind := range withoutAddress {
		t.Run(kind.String(), func(t *testing.T) {
			response := base(kind)
			// Even if the backend reports an address for a non-deploy kind, the
			// canonical receipt must not carry it.
			response.ContractAddress = address

			receipt, err := sn2core.AdaptTransactionReceipt(response)
			require.NoError(t, err)

			assert.Equal(t, hash, receipt.TransactionHash)
			assert.Equal(t, uint64(0), receipt.TransactionIndex)
			assert.Nil(t, receipt.ContractAddress)
		})
	}

	t.Run("message and event ordering preserved", func(t *testing.T) {
		response := base(starknet.TxnInvoke)
		response.Events = append(response.Events, &starknet.Event{
			FromAddress: utils.HexToFelt(t, "0x91"),
		})

		receipt, err := sn2core.AdaptTransactionReceipt(response)
		require.NoError(t, err)

		require.Len(t, receipt.Events, 2)
		assert.Equal(t, utils.HexToFelt(t, "0x81"), receipt.Events[0].FromAddress)
		assert.Equal(t, utils.HexToFelt(t, "0x91"), receipt.Events[1].FromAddress)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := sn2core.AdaptTransactionReceipt(&starknet.TransactionReceipt{TransactionHash: hash})
		require.Error(t, err)
	})
}

func TestAdaptStateUpdate(t *testing.T) {
	response := &starknet.StateUpdate{
		NewRoot: utils.HexToFelt(t, "0x2ac"),
		OldRoot: utils.HexToFelt(t, "0x2aa"),
		StateDiff: starknet.StateDiff{
			StorageDiffs: []starknet.ContractStorageDiff{
				{
					Address: utils.HexToFelt(t, "0x1"),
					StorageEntries: []starknet.StorageEntry{
						{Key: utils.HexToFelt(t, "0x2"), Value: utils.HexToFelt(t, "0x3")},
						{Key: utils.HexToFelt(t, "0x4"), Value: utils.HexToFelt(t, "0x5")},
					},
				},
			},
			DeclaredContractHashes: []*felt.Felt{utils.HexToFelt(t, "0x6")},
			DeployedContracts: []starknet.DeployedContract{
				{Address: utils.HexToFelt(t, "0x7"), ClassHash: utils.HexToFelt(t, "0x8")},
			},
			Nonces: []starknet.ContractNonce{
				{ContractAddress: utils.HexToFelt(t, "0x9"), Nonce: utils.HexToFelt(t, "0xa")},
			},
		},
	}

	su, err := sn2core.AdaptStateUpdate(response)
	require.NoError(t, err)

	assert.Equal(t, response.NewRoot, su.NewRoot)
	assert.Equal(t, response.OldRoot, su.OldRoot)
	require.Len(t, su.StateDiff.StorageDiffs, 1)
	assert.Equal(t, utils.HexToFelt(t, "0x1"), su.StateDiff.StorageDiffs[0].ContractAddress)
	require.Len(t, su.StateDiff.StorageDiffs[0].Entries, 2)
	assert.Equal(t, utils.HexToFelt(t, "0x2"), su.StateDiff.StorageDiffs[0].Entries[0].Key)
	require.Len(t, su.StateDiff.DeclaredClasses, 1)
	require.Len(t, su.StateDiff.DeployedContracts, 1)
	require.Len(t, su.StateDiff.Nonces, 1)

	t.Run("missing roots", func(t *testing.T) {
		_, err := sn2core.AdaptStateUpdate(&starknet.StateUpdate{})
		require.Error(t, err)
	})
}
