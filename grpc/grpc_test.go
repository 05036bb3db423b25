package grpc

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/starkstream/node/db"
	"github.com/starkstream/node/db/pebble"
	"github.com/starkstream/node/grpc/gen"
	"github.com/starkstream/node/healer"
	"github.com/starkstream/node/ingestion"
	"github.com/starkstream/node/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

func freePort(t *testing.T) uint16 {
	t.Helper()
	lis, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	port := uint16(lis.Addr().(*net.TCPAddr).Port)
	require.NoError(t, lis.Close())
	return port
}

func testServer(t *testing.T, port uint16) (*Server, *pebble.DB) {
	t.Helper()
	testDB := pebble.NewMemTest(t)
	log := utils.NewNopZapLogger()
	server := NewServer(port, "1.0.0", testDB, ingestion.NewStreamClient(),
		healer.NewClient(log), nil, log).
		WithHealthInterval(50 * time.Millisecond)
	return server, testDB
}

func TestServerRun(t *testing.T) {
	server, _ := testServer(t, 0)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		require.NoError(t, server.Run(ctx))
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()
	wg.Wait()
}

func TestServerRunListenFailure(t *testing.T) {
	lis, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	defer lis.Close()
	port := uint16(lis.Addr().(*net.TCPAddr).Port)

	server, _ := testServer(t, port)
	err = server.Run(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestHealthOverListener(t *testing.T) {
	port := freePort(t)
	server, testDB := testServer(t, port)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		require.NoError(t, server.Run(ctx))
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	conn, err := grpc.NewClient(fmt.Sprintf("localhost:%d", port),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	client := grpc_health_v1.NewHealthClient(conn)

	check := func() grpc_health_v1.HealthCheckResponse_ServingStatus {
		checkCtx, checkCancel := context.WithTimeout(ctx, 2*time.Second)
		defer checkCancel()
		resp, err := client.Check(checkCtx, &grpc_health_v1.HealthCheckRequest{})
		require.NoError(t, err)
		return resp.Status
	}

	waitFor := func(want grpc_health_v1.HealthCheckResponse_ServingStatus) {
		require.Eventually(t, func() bool {
			return check() == want
		}, 2*time.Second, 20*time.Millisecond)
	}

	// No head cursor stored yet.
	waitFor(grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	cursorBytes, err := proto.Marshal(&gen.Cursor{OrderKey: 1})
	require.NoError(t, err)
	require.NoError(t, testDB.Put(db.HeadCursor.Key(), cursorBytes))
	waitFor(grpc_health_v1.HealthCheckResponse_SERVING)
}

// blockingStore parks block reads on a gate so a replaying stream stays
// in-flight for as long as the test wants.
type blockingStore struct {
	*pebble.DB
	gate        chan struct{}
	blocked     chan struct{}
	blockedOnce sync.Once
	releaseOnce sync.Once
}

func (b *blockingStore) Get(key []byte, cb func([]byte) error) error {
	if len(key) > 0 && key[0] == byte(db.Blocks) {
		b.blockedOnce.Do(func() { close(b.blocked) })
		<-b.gate
	}
	return b.DB.Get(key, cb)
}

func (b *blockingStore) release() {
	b.releaseOnce.Do(func() { close(b.gate) })
}

func TestGracefulShutdown(t *testing.T) {
	var reads atomic.Int64
	testDB := pebble.NewMemTest(t).WithListener(&db.SelectiveListener{
		OnIOCb: func(write bool, _ time.Duration) {
			if !write {
				reads.Add(1)
			}
		},
	})
	store := &blockingStore{
		DB:      testDB,
		gate:    make(chan struct{}),
		blocked: make(chan struct{}),
	}
	defer store.release()

	// One stored block behind the head cursor so a replaying stream has work.
	cursorBytes, err := proto.Marshal(&gen.Cursor{OrderKey: 1})
	require.NoError(t, err)
	require.NoError(t, testDB.Put(db.HeadCursor.Key(), cursorBytes))
	blockBytes, err := proto.Marshal(&gen.Block{Header: &gen.BlockHeader{BlockNumber: 1}})
	require.NoError(t, err)
	require.NoError(t, testDB.Put(db.Blocks.NumericKey(1), blockBytes))

	log := utils.NewNopZapLogger()
	port := freePort(t)
	server := NewServer(port, "1.0.0", store, ingestion.NewStreamClient(),
		healer.NewClient(log), nil, log).
		WithHealthInterval(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		require.NoError(t, server.Run(ctx))
	}()

	conn, err := grpc.NewClient(fmt.Sprintf("localhost:%d", port),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := gen.NewNodeClient(conn)
	require.Eventually(t, func() bool {
		_, err := client.StreamData(context.Background(),
			&gen.StreamDataRequest{StartingCursor: &gen.Cursor{OrderKey: 0}})
		return err == nil
	}, 2*time.Second, 50*time.Millisecond)

	select {
	case <-store.blocked:
	case <-time.After(2 * time.Second):
		t.Fatal("stream never reached storage")
	}

	// Shutdown begins while the stream is still draining. The reporter must
	// keep probing storage until the listener has fully stopped.
	cancel()
	before := reads.Load()
	require.Eventually(t, func() bool {
		return reads.Load() > before
	}, 2*time.Second, 10*time.Millisecond, "reporter stopped before the stream drained")

	store.release()
	wg.Wait()

	// Run joined the reporter, so probing has ceased.
	after := reads.Load()
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, after, reads.Load())
}

func TestClient(t *testing.T) {
	t.Skip("manual testing")

	conn, err := grpc.NewClient(":7171", grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := gen.NewNodeClient(conn)
	t.Run("Version", func(t *testing.T) {
		version, err := client.Version(context.Background(), &emptypb.Empty{})
		require.NoError(t, err)
		spew.Dump(version)
	})
	t.Run("StreamData", func(t *testing.T) {
		stream, err := client.StreamData(context.Background(), &gen.StreamDataRequest{})
		require.NoError(t, err)

		resp, err := stream.Recv()
		require.NoError(t, err)
		spew.Dump(resp)
	})
}
