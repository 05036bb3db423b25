package provider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/starkstream/node/core"
	"github.com/starkstream/node/provider"
	"github.com/starkstream/node/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcHandler func(method string, params json.RawMessage) (any, *rpcError)

// newBackend serves a minimal JSON-RPC 2.0 endpoint backed by handler.
func newBackend(t *testing.T, handler rpcHandler) *provider.JSONRPC {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
			Params json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		result, rpcErr := handler(req.Method, req.Params)
		response := map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
		}
		if rpcErr != nil {
			response["error"] = rpcErr
		} else {
			response["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	t.Cleanup(srv.Close)

	client, err := provider.NewJSONRPC(context.Background(), srv.URL)
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func confirmedBlock() map[string]any {
	return map[string]any{
		"status":            "ACCEPTED_ON_L2",
		"block_hash":        "0x47c3637b57c2b079b93c61539950c17e868a28f46cdef28f88521067f21e943",
		"parent_hash":       "0x2a70fb03fe363a2d6be843343a1d81ce6abeda1e9bd5cc6ad8fa9f45e30fdeb",
		"block_number":      100,
		"new_root":          "0x6a42d697b5b735eef03bb71841ed5099d57088f7b5eec8e356fe2601d5ba08f",
		"sequencer_address": "0x46a89ae102987331d369645031b49c27738ed096f2789c24449966da4c6de6b",
		"timestamp":         1654588282,
		"transactions": []map[string]any{
			{
				"type":                 "INVOKE",
				"transaction_hash":     "0x1",
				"version":              "0x0",
				"max_fee":              "0x6",
				"signature":            []string{"0x5"},
				"contract_address":     "0x2",
				"entry_point_selector": "0x3",
				"calldata":             []string{"0x4"},
			},
		},
	}
}

func pendingBlock() map[string]any {
	return map[string]any{
		"parent_hash":       "0x2a70fb03fe363a2d6be843343a1d81ce6abeda1e9bd5cc6ad8fa9f45e30fdeb",
		"sequencer_address": "0x46a89ae102987331d369645031b49c27738ed096f2789c24449966da4c6de6b",
		"timestamp":         1654588282,
		"transactions":      []map[string]any{},
	}
}

func TestGetHead(t *testing.T) {
	client := newBackend(t, func(method string, _ json.RawMessage) (any, *rpcError) {
		require.Equal(t, "starknet_blockHashAndNumber", method)
		return map[string]any{"block_hash": "0xabc", "block_number": 231579}, nil
	})

	head, err := client.GetHead(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(231579), head.Number)
	assert.Equal(t, utils.HexToFelt(t, "0xabc"), head.Hash)
}

func TestGetBlock(t *testing.T) {
	t.Run("latest", func(t *testing.T) {
		client := newBackend(t, func(method string, params json.RawMessage) (any, *rpcError) {
			require.Equal(t, "starknet_getBlockWithTxs", method)
			assert.JSONEq(t, `["latest"]`, string(params))
			return confirmedBlock(), nil
		})

		status, header, body, err := client.GetBlock(context.Background(), provider.LatestBlockID())
		require.NoError(t, err)
		assert.Equal(t, core.StatusAcceptedOnL2, status)
		require.NotNil(t, header.Number)
		assert.Equal(t, uint64(100), *header.Number)
		assert.False(t, header.IsPending())
		require.Len(t, body, 1)
	})

	t.Run("by number", func(t *testing.T) {
		client := newBackend(t, func(_ string, params json.RawMessage) (any, *rpcError) {
			assert.JSONEq(t, `[{"block_number":100}]`, string(params))
			return confirmedBlock(), nil
		})

		_, _, _, err := client.GetBlock(context.Background(), provider.NumberBlockID(100))
		require.NoError(t, err)
	})

	t.Run("by hash", func(t *testing.T) {
		client := newBackend(t, func(_ string, params json.RawMessage) (any, *rpcError) {
			assert.JSONEq(t, `[{"block_hash":"0x1234"}]`, string(params))
			return confirmedBlock(), nil
		})

		_, _, _, err := client.GetBlock(context.Background(), provider.HashBlockID(utils.HexToFelt(t, "0x1234")))
		require.NoError(t, err)
	})

	t.Run("pending", func(t *testing.T) {
		client := newBackend(t, func(_ string, params json.RawMessage) (any, *rpcError) {
			assert.JSONEq(t, `["pending"]`, string(params))
			return pendingBlock(), nil
		})

		status, header, _, err := client.GetBlock(context.Background(), provider.PendingBlockID())
		require.NoError(t, err)
		assert.Equal(t, core.StatusPending, status)
		assert.Nil(t, header.Hash)
		assert.Nil(t, header.Number)
		assert.Nil(t, header.NewRoot)
	})

	t.Run("pending request answered with sealed block", func(t *testing.T) {
		client := newBackend(t, func(_ string, _ json.RawMessage) (any, *rpcError) {
			return confirmedBlock(), nil
		})

		_, header, body, err := client.GetBlock(context.Background(), provider.PendingBlockID())
		require.ErrorIs(t, err, provider.ErrExpectedPendingBlock)
		assert.Nil(t, header)
		assert.Nil(t, body)
	})

	t.Run("latest request answered with pending block", func(t *testing.T) {
		client := newBackend(t, func(_ string, _ json.RawMessage) (any, *rpcError) {
			return pendingBlock(), nil
		})

		_, header, body, err := client.GetBlock(context.Background(), provider.LatestBlockID())
		require.ErrorIs(t, err, provider.ErrUnexpectedPendingBlock)
		assert.Nil(t, header)
		assert.Nil(t, body)
	})

	t.Run("block not found", func(t *testing.T) {
		client := newBackend(t, func(_ string, _ json.RawMessage) (any, *rpcError) {
			return nil, &rpcError{Code: 24, Message: "Block not found"}
		})

		_, _, _, err := client.GetBlock(context.Background(), provider.NumberBlockID(1<<40))
		require.Error(t, err)
		assert.True(t, provider.IsBlockNotFound(err))
	})

	t.Run("other backend errors stay opaque", func(t *testing.T) {
		client := newBackend(t, func(_ string, _ json.RawMessage) (any, *rpcError) {
			return nil, &rpcError{Code: -32603, Message: "internal error"}
		})

		_, _, _, err := client.GetBlock(context.Background(), provider.LatestBlockID())
		require.Error(t, err)
		assert.False(t, provider.IsBlockNotFound(err))
	})
}

func TestGetStateUpdate(t *testing.T) {
	client := newBackend(t, func(method string, params json.RawMessage) (any, *rpcError) {
		require.Equal(t, "starknet_getStateUpdate", method)
		assert.JSONEq(t, `["latest"]`, string(params))
		return map[string]any{
			"new_root": "0x2ac",
			"old_root": "0x2aa",
			"state_diff": map[string]any{
				"storage_diffs": []map[string]any{
					{
						"address": "0x1",
						"storage_entries": []map[string]any{
							{"key": "0x2", "value": "0x3"},
						},
					},
				},
				"declared_contract_hashes": []string{"0x6"},
				"deployed_contracts": []map[string]any{
					{"address": "0x7", "class_hash": "0x8"},
				},
				"nonces": []map[string]any{
					{"contract_address": "0x9", "nonce": "0xa"},
				},
			},
		}, nil
	})

	su, err := client.GetStateUpdate(context.Background(), provider.LatestBlockID())
	require.NoError(t, err)
	assert.Equal(t, utils.HexToFelt(t, "0x2ac"), su.NewRoot)
	assert.Equal(t, utils.HexToFelt(t, "0x2aa"), su.OldRoot)
	require.Len(t, su.StateDiff.StorageDiffs, 1)
	require.Len(t, su.StateDiff.DeclaredClasses, 1)
	require.Len(t, su.StateDiff.DeployedContracts, 1)
	require.Len(t, su.StateDiff.Nonces, 1)
}

func TestGetTransactionReceipt(t *testing.T) {
	hash := utils.HexToFelt(t, "0x1b8ad9bd8bfbb693f2e77c7f2c3a9fb160a4e4a825df6f0e4b794bd4fd2ae4d")

	client := newBackend(t, func(method string, params json.RawMessage) (any, *rpcError) {
		require.Equal(t, "starknet_getTransactionReceipt", method)
		assert.JSONEq(t, `["`+hash.String()+`"]`, string(params))
		return map[string]any{
			"type":             "DEPLOY_ACCOUNT",
			"transaction_hash": hash.String(),
			"actual_fee":       "0x247aff6e224",
			"status":           "ACCEPTED_ON_L2",
			"block_number":     100,
			"messages_sent":    []any{},
			"events":           []any{},
			"contract_address": "0x3deca8",
		}, nil
	})

	receipt, err := client.GetTransactionReceipt(context.Background(), hash)
	require.NoError(t, err)
	assert.True(t, hash.Equal(receipt.TransactionHash))
	assert.Equal(t, uint64(0), receipt.TransactionIndex)
	assert.Equal(t, utils.HexToFelt(t, "0x3deca8"), receipt.ContractAddress)
}

func TestBlockIDMarshal(t *testing.T) {
	tests := []struct {
		name string
		id   provider.BlockID
		want string
	}{
		{"latest", provider.LatestBlockID(), `"latest"`},
		{"pending", provider.PendingBlockID(), `"pending"`},
		{"hash", provider.HashBlockID(utils.HexToFelt(t, "0xdead")), `{"block_hash":"0xdead"}`},
		{"number", provider.NumberBlockID(42), `{"block_number":42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.id)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}

	t.Run("pending predicate", func(t *testing.T) {
		assert.True(t, provider.PendingBlockID().IsPending())
		assert.False(t, provider.LatestBlockID().IsPending())
		assert.False(t, provider.NumberBlockID(0).IsPending())
	})
}
