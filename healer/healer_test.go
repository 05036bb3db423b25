package healer_test

import (
	"testing"

	"github.com/starkstream/node/core"
	"github.com/starkstream/node/healer"
	"github.com/starkstream/node/utils"
	"github.com/stretchr/testify/assert"
)

func TestRequestHeal(t *testing.T) {
	client := healer.NewClient(utils.NewNopZapLogger())
	sub := client.Requests()
	defer sub.Unsubscribe()

	block := &core.GlobalBlockID{Number: 99, Hash: utils.HexToFelt(t, "0x63")}
	client.RequestHeal("stream invalidated", block)

	req := <-sub.Recv()
	assert.Equal(t, "stream invalidated", req.Reason)
	assert.Equal(t, block, req.Block)
}
