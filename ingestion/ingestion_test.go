package ingestion_test

import (
	"testing"

	"github.com/starkstream/node/core"
	"github.com/starkstream/node/ingestion"
	"github.com/starkstream/node/utils"
	"github.com/stretchr/testify/assert"
)

func TestPublishSubscribe(t *testing.T) {
	client := ingestion.NewStreamClient()
	sub := client.Subscribe()
	defer sub.Unsubscribe()

	cursor := &core.GlobalBlockID{Number: 10, Hash: utils.HexToFelt(t, "0xa")}
	client.Publish(ingestion.Message{Kind: ingestion.Accepted, Cursor: cursor})

	msg := <-sub.Recv()
	assert.Equal(t, ingestion.Accepted, msg.Kind)
	assert.Equal(t, cursor, msg.Cursor)
}

func TestMessageKindString(t *testing.T) {
	assert.Equal(t, "accepted", ingestion.Accepted.String())
	assert.Equal(t, "finalized", ingestion.Finalized.String())
	assert.Equal(t, "invalidate", ingestion.Invalidate.String())
	assert.Equal(t, "unknown(0)", ingestion.MessageKind(0).String())
}
