package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/starkstream/node/core"
	"github.com/starkstream/node/db"
	"github.com/starkstream/node/db/pebble"
	"github.com/starkstream/node/grpc/gen"
	"github.com/starkstream/node/healer"
	"github.com/starkstream/node/ingestion"
	"github.com/starkstream/node/mocks"
	"github.com/starkstream/node/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

func makeStreamMock(ctx context.Context) *streamMock {
	return &streamMock{
		ctx:            ctx,
		sentFromServer: make(chan *gen.StreamDataResponse, 10),
	}
}

type streamMock struct {
	grpc.ServerStream
	ctx            context.Context
	sentFromServer chan *gen.StreamDataResponse
}

func (m *streamMock) Context() context.Context {
	return m.ctx
}

func (m *streamMock) Send(resp *gen.StreamDataResponse) error {
	m.sentFromServer <- resp
	return nil
}

func (m *streamMock) recv(t *testing.T) *gen.StreamDataResponse {
	t.Helper()
	select {
	case resp := <-m.sentFromServer:
		return resp
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for stream response")
		return nil
	}
}

func testService(t *testing.T, runCtx context.Context) (nodeService, *pebble.DB, *ingestion.StreamClient, *healer.Client) {
	t.Helper()
	testDB := pebble.NewMemTest(t)
	stream := ingestion.NewStreamClient()
	log := utils.NewNopZapLogger()
	heal := healer.NewClient(log)
	svc := nodeService{
		db:      testDB,
		stream:  stream,
		healer:  heal,
		version: "1.2.3-rc1",
		log:     log,
		runCtx:  runCtx,
	}
	return svc, testDB, stream, heal
}

func storeBlock(t *testing.T, testDB *pebble.DB, number uint64, hash string) *gen.Block {
	t.Helper()
	block := &gen.Block{
		Header: &gen.BlockHeader{
			BlockHash:   &gen.FieldElement{Value: utils.HexToFelt(t, hash).Marshal()},
			BlockNumber: number,
			Status:      gen.BlockStatus_BLOCK_STATUS_ACCEPTED_ON_L2,
		},
	}
	blockBytes, err := proto.Marshal(block)
	require.NoError(t, err)
	require.NoError(t, testDB.Put(db.Blocks.NumericKey(number), blockBytes))
	return block
}

func storeHeadCursor(t *testing.T, testDB *pebble.DB, number uint64, hash string) {
	t.Helper()
	cursorBytes, err := proto.Marshal(&gen.Cursor{
		OrderKey:  number,
		UniqueKey: utils.HexToFelt(t, hash).Marshal(),
	})
	require.NoError(t, err)
	require.NoError(t, testDB.Put(db.HeadCursor.Key(), cursorBytes))
}

func TestVersion(t *testing.T) {
	svc, _, _, _ := testService(t, context.Background())

	reply, err := svc.Version(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), reply.Major)
	assert.Equal(t, uint32(2), reply.Minor)
	assert.Equal(t, uint32(3), reply.Patch)

	svc.version = "not a version"
	_, err = svc.Version(context.Background(), &emptypb.Empty{})
	assert.Error(t, err)
}

func TestStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := mocks.NewMockProvider(ctrl)

	svc, testDB, _, _ := testService(t, context.Background())
	svc.provider = chain

	head := &core.GlobalBlockID{Number: 231579, Hash: utils.HexToFelt(t, "0xbeef")}
	chain.EXPECT().GetHead(gomock.Any()).Return(head, nil).Times(2)

	t.Run("no stored cursor", func(t *testing.T) {
		status, err := svc.Status(context.Background(), &emptypb.Empty{})
		require.NoError(t, err)
		assert.Equal(t, uint64(231579), status.HighestBlockNumber)
		assert.Equal(t, uint64(0), status.CurrentBlockNumber)
		assert.Nil(t, status.CurrentBlockHash)
	})

	t.Run("with stored cursor", func(t *testing.T) {
		storeHeadCursor(t, testDB, 231570, "0xcafe")

		status, err := svc.Status(context.Background(), &emptypb.Empty{})
		require.NoError(t, err)
		assert.Equal(t, uint64(231570), status.CurrentBlockNumber)
		assert.Equal(t, utils.HexToFelt(t, "0xcafe").Marshal(), status.CurrentBlockHash.Value)
	})
}

func TestStreamData(t *testing.T) {
	t.Run("accepted message carries stored block", func(t *testing.T) {
		runCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		svc, testDB, stream, _ := testService(t, runCtx)
		stored := storeBlock(t, testDB, 5, "0x5")

		server := makeStreamMock(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- svc.StreamData(&gen.StreamDataRequest{}, server)
		}()

		// Publish until the stream goroutine has subscribed and answers.
		var resp *gen.StreamDataResponse
		require.Eventually(t, func() bool {
			stream.Publish(ingestion.Message{
				Kind:   ingestion.Accepted,
				Cursor: &core.GlobalBlockID{Number: 5, Hash: utils.HexToFelt(t, "0x5")},
			})
			select {
			case resp = <-server.sentFromServer:
				return true
			default:
				return false
			}
		}, 2*time.Second, 10*time.Millisecond)

		data := resp.GetData()
		require.NotNil(t, data)
		assert.Equal(t, uint64(5), data.Cursor.OrderKey)
		assert.Equal(t, gen.BlockStatus_BLOCK_STATUS_ACCEPTED_ON_L2, data.Status)
		assert.True(t, proto.Equal(stored, data.Block))

		cancel()
		require.NoError(t, <-done)
	})

	t.Run("invalidate triggers heal", func(t *testing.T) {
		runCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		svc, _, stream, heal := testService(t, runCtx)

		healSub := heal.Requests()
		defer healSub.Unsubscribe()

		server := makeStreamMock(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- svc.StreamData(&gen.StreamDataRequest{}, server)
		}()

		cursor := &core.GlobalBlockID{Number: 41, Hash: utils.HexToFelt(t, "0x29")}
		var resp *gen.StreamDataResponse
		require.Eventually(t, func() bool {
			stream.Publish(ingestion.Message{Kind: ingestion.Invalidate, Cursor: cursor})
			select {
			case resp = <-server.sentFromServer:
				return true
			default:
				return false
			}
		}, 2*time.Second, 10*time.Millisecond)

		invalidate := resp.GetInvalidate()
		require.NotNil(t, invalidate)
		assert.Equal(t, uint64(41), invalidate.Cursor.OrderKey)

		healReq := <-healSub.Recv()
		assert.Equal(t, cursor, healReq.Block)

		cancel()
		require.NoError(t, <-done)
	})

	t.Run("replay from starting cursor", func(t *testing.T) {
		runCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		svc, testDB, _, _ := testService(t, runCtx)

		storeBlock(t, testDB, 1, "0x1")
		storeBlock(t, testDB, 2, "0x2")
		storeHeadCursor(t, testDB, 2, "0x2")

		server := makeStreamMock(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- svc.StreamData(&gen.StreamDataRequest{
				StartingCursor: &gen.Cursor{OrderKey: 0},
			}, server)
		}()

		for _, want := range []uint64{1, 2} {
			data := server.recv(t).GetData()
			require.NotNil(t, data)
			assert.Equal(t, want, data.Cursor.OrderKey)
		}

		cancel()
		require.NoError(t, <-done)
	})

	t.Run("stream ends with client context", func(t *testing.T) {
		svc, _, _, _ := testService(t, context.Background())

		clientCtx, clientCancel := context.WithCancel(context.Background())
		server := makeStreamMock(clientCtx)
		done := make(chan error, 1)
		go func() {
			done <- svc.StreamData(&gen.StreamDataRequest{}, server)
		}()

		clientCancel()
		assert.ErrorIs(t, <-done, context.Canceled)
	})
}
