// Package ingestion is the boundary between the block ingestion pipeline and
// the stream server. The pipeline publishes one message per cursor event; the
// server fans them out to every open stream.
package ingestion

import (
	"fmt"

	"github.com/starkstream/node/core"
	"github.com/starkstream/node/feed"
)

// Buffer per stream subscription. A subscriber that falls further behind than
// this resynchronizes from storage.
const subscriptionBuffer = 64

type MessageKind uint8

const (
	// Accepted announces a block accepted on L2 at the message cursor.
	Accepted MessageKind = iota + 1
	// Finalized announces that blocks up to the cursor are accepted on L1.
	Finalized
	// Invalidate announces a chain reorganization. The cursor is the highest
	// block still valid.
	Invalidate
)

func (k MessageKind) String() string {
	switch k {
	case Accepted:
		return "accepted"
	case Finalized:
		return "finalized"
	case Invalidate:
		return "invalidate"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

type Message struct {
	Kind   MessageKind
	Cursor *core.GlobalBlockID
}

// StreamClient is the publish/subscribe handle the ingestion pipeline and the
// stream server share.
type StreamClient struct {
	feed *feed.Feed[Message]
}

func NewStreamClient() *StreamClient {
	return &StreamClient{
		feed: feed.New[Message](),
	}
}

func (c *StreamClient) Publish(msg Message) {
	c.feed.Send(msg)
}

func (c *StreamClient) Subscribe() *feed.Subscription[Message] {
	return c.feed.Subscribe(subscriptionBuffer)
}
