package starknet_test

import (
	"encoding/json"
	"testing"

	"github.com/starkstream/node/starknet"
	"github.com/starkstream/node/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockUnmarshal(t *testing.T) {
	blockJSON := `{
		"status": "ACCEPTED_ON_L1",
		"block_hash": "0x47c3637b57c2b079b93c61539950c17e868a28f46cdef28f88521067f21e943",
		"parent_hash": "0x2a70fb03fe363a2d6be843343a1d81ce6abeda1e9bd5cc6ad8fa9f45e30fdeb",
		"block_number": 2175,
		"new_root": "0x6a42d697b5b735eef03bb71841ed5099d57088f7b5eec8e356fe2601d5ba08f",
		"sequencer_address": "0x46a89ae102987331d369645031b49c27738ed096f2789c24449966da4c6de6b",
		"timestamp": 1654588282,
		"transactions": [
			{
				"type": "INVOKE_FUNCTION",
				"transaction_hash": "0x6d68db2b0800ee4cd4ab22dd4e85e2e1d1e518aceb1ac6daad5ec0c2fcaebc",
				"version": "0x0",
				"max_fee": "0x0",
				"signature": [],
				"contract_address": "0x1fc0bf0a21fe1fa874a4591751c7c3a3a0e7e40d9855931203b2ea459e7fb2",
				"entry_point_selector": "0x12ead94ae9d3f9d2bdb6b847cf255f1f398193a1f88884a0ae8e18f24a037b6",
				"calldata": ["0x3"]
			}
		]
	}`

	var block starknet.Block
	require.NoError(t, json.Unmarshal([]byte(blockJSON), &block))

	assert.False(t, block.IsPending())
	require.NotNil(t, block.Status)
	assert.Equal(t, starknet.StatusAcceptedOnL1, *block.Status)
	require.NotNil(t, block.Number)
	assert.Equal(t, uint64(2175), *block.Number)
	assert.Equal(t, utils.HexToFelt(t, "0x47c3637b57c2b079b93c61539950c17e868a28f46cdef28f88521067f21e943"), block.Hash)

	require.Len(t, block.Transactions, 1)
	tx := block.Transactions[0]
	assert.Equal(t, starknet.TxnInvoke, tx.Type)
	require.NotNil(t, tx.CallData)
	assert.Len(t, *tx.CallData, 1)
}

func TestPendingBlockUnmarshal(t *testing.T) {
	pendingJSON := `{
		"parent_hash": "0x2a70fb03fe363a2d6be843343a1d81ce6abeda1e9bd5cc6ad8fa9f45e30fdeb",
		"sequencer_address": "0x46a89ae102987331d369645031b49c27738ed096f2789c24449966da4c6de6b",
		"timestamp": 1654588282,
		"transactions": []
	}`

	var block starknet.Block
	require.NoError(t, json.Unmarshal([]byte(pendingJSON), &block))

	assert.True(t, block.IsPending())
	assert.Nil(t, block.Hash)
	assert.Nil(t, block.Number)
	assert.Nil(t, block.NewRoot)
}

func TestTransactionTypeText(t *testing.T) {
	tests := map[string]starknet.TransactionType{
		"DECLARE":        starknet.TxnDeclare,
		"DEPLOY":         starknet.TxnDeploy,
		"DEPLOY_ACCOUNT": starknet.TxnDeployAccount,
		"INVOKE":         starknet.TxnInvoke,
		"INVOKE_FUNCTION": starknet.TxnInvoke,
		"L1_HANDLER":     starknet.TxnL1Handler,
	}
	for text, want := range tests {
		t.Run(text, func(t *testing.T) {
			var got starknet.TransactionType
			require.NoError(t, got.UnmarshalText([]byte(text)))
			assert.Equal(t, want, got)
		})
	}

	var invalid starknet.TransactionType
	assert.Error(t, invalid.UnmarshalText([]byte("SOMETHING_ELSE")))
}

func TestBlockStatusText(t *testing.T) {
	var status starknet.BlockStatus
	require.NoError(t, status.UnmarshalText([]byte("ACCEPTED_ON_L2")))
	assert.Equal(t, starknet.StatusAcceptedOnL2, status)

	text, err := status.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED_ON_L2", string(text))

	assert.Error(t, status.UnmarshalText([]byte("MAYBE")))
}
