package grpc

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"github.com/starkstream/node/adapters/core2grpc"
	"github.com/starkstream/node/core"
	"github.com/starkstream/node/db"
	"github.com/starkstream/node/grpc/gen"
	"github.com/starkstream/node/healer"
	"github.com/starkstream/node/ingestion"
	"github.com/starkstream/node/provider"
	"github.com/starkstream/node/utils"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

type nodeService struct {
	gen.UnimplementedNodeServer

	db       db.KeyValueStore
	stream   *ingestion.StreamClient
	healer   *healer.Client
	provider provider.Provider
	version  string
	log      utils.SimpleLogger

	// runCtx ends streams when the server shuts down, so GracefulStop can
	// finish draining.
	runCtx context.Context
}

func (s nodeService) Version(_ context.Context, _ *emptypb.Empty) (*gen.VersionResponse, error) {
	v, err := semver.NewVersion(s.version)
	if err != nil {
		return nil, err
	}

	return &gen.VersionResponse{
		Major: uint32(v.Major()),
		Minor: uint32(v.Minor()),
		Patch: uint32(v.Patch()),
	}, nil
}

func (s nodeService) Status(ctx context.Context, _ *emptypb.Empty) (*gen.StatusResponse, error) {
	head, err := s.provider.GetHead(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "query chain head")
	}

	response := &gen.StatusResponse{
		HighestBlockNumber: head.Number,
		HighestBlockHash:   core2grpc.AdaptFelt(head.Hash),
	}

	cursor, err := s.headCursor()
	if err != nil && !errors.Is(err, db.ErrKeyNotFound) {
		return nil, errors.Wrap(err, "load head cursor")
	}
	if cursor != nil {
		response.CurrentBlockNumber = cursor.OrderKey
		response.CurrentBlockHash = &gen.FieldElement{Value: cursor.UniqueKey}
	}
	return response, nil
}

func (s nodeService) StreamData(req *gen.StreamDataRequest, server gen.Node_StreamDataServer) error {
	// Subscribing before the replay means no message published during the
	// replay is lost. A block can be sent twice around the hand-off; clients
	// deduplicate by cursor.
	sub := s.stream.Subscribe()
	defer sub.Unsubscribe()

	if start := req.GetStartingCursor(); start != nil {
		if err := s.replay(start.OrderKey+1, server); err != nil {
			return err
		}
	}

	for {
		select {
		case <-s.runCtx.Done():
			return nil
		case <-server.Context().Done():
			return server.Context().Err()
		case msg, ok := <-sub.Recv():
			if !ok {
				return nil
			}
			if err := s.handleStreamMessage(msg, server); err != nil {
				return err
			}
		}
	}
}

// replay streams stored blocks from number from up to the stored head cursor.
// It stops quietly at the first gap.
func (s nodeService) replay(from uint64, server gen.Node_StreamDataServer) error {
	head, err := s.headCursor()
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "load head cursor")
	}

	for number := from; number <= head.OrderKey; number++ {
		block, err := s.readBlock(number)
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "load block %d", number)
		}

		err = server.Send(&gen.StreamDataResponse{
			Message: &gen.StreamDataResponse_Data{
				Data: &gen.Data{
					Cursor: &gen.Cursor{
						OrderKey:  number,
						UniqueKey: block.Header.BlockHash.GetValue(),
					},
					Status: block.Header.Status,
					Block:  block,
				},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s nodeService) handleStreamMessage(msg ingestion.Message, server gen.Node_StreamDataServer) error {
	cursor := adaptCursor(msg.Cursor)

	switch msg.Kind {
	case ingestion.Invalidate:
		s.healer.RequestHeal("stream invalidated", msg.Cursor)
		return server.Send(&gen.StreamDataResponse{
			Message: &gen.StreamDataResponse_Invalidate{
				Invalidate: &gen.Invalidate{Cursor: cursor},
			},
		})
	case ingestion.Accepted, ingestion.Finalized:
		block, err := s.readBlock(msg.Cursor.Number)
		if err != nil {
			return errors.Wrapf(err, "load block %d", msg.Cursor.Number)
		}

		status := gen.BlockStatus_BLOCK_STATUS_ACCEPTED_ON_L2
		if msg.Kind == ingestion.Finalized {
			status = gen.BlockStatus_BLOCK_STATUS_ACCEPTED_ON_L1
		}
		return server.Send(&gen.StreamDataResponse{
			Message: &gen.StreamDataResponse_Data{
				Data: &gen.Data{
					Cursor: cursor,
					Status: status,
					Block:  block,
				},
			},
		})
	default:
		return fmt.Errorf("unknown stream message kind %q", msg.Kind)
	}
}

func (s nodeService) headCursor() (*gen.Cursor, error) {
	cursor := new(gen.Cursor)
	err := s.db.Get(db.HeadCursor.Key(), func(value []byte) error {
		return proto.Unmarshal(value, cursor)
	})
	if err != nil {
		return nil, err
	}
	return cursor, nil
}

func (s nodeService) readBlock(number uint64) (*gen.Block, error) {
	block := new(gen.Block)
	err := s.db.Get(db.Blocks.NumericKey(number), func(value []byte) error {
		return proto.Unmarshal(value, block)
	})
	if err != nil {
		return nil, err
	}
	return block, nil
}

func adaptCursor(id *core.GlobalBlockID) *gen.Cursor {
	if id == nil {
		return nil
	}
	cursor := &gen.Cursor{OrderKey: id.Number}
	if id.Hash != nil {
		hash := id.Hash.Bytes()
		cursor.UniqueKey = hash[:]
	}
	return cursor
}
