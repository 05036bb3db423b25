// Package healer exposes the trigger side of the chain healer. The stream
// server requests a heal when it detects an invalidated cursor; the repair
// pipeline consumes the requests.
package healer

import (
	"github.com/starkstream/node/core"
	"github.com/starkstream/node/feed"
	"github.com/starkstream/node/utils"
)

const requestBuffer = 16

type Request struct {
	Reason string
	Block  *core.GlobalBlockID
}

type Client struct {
	feed *feed.Feed[Request]
	log  utils.SimpleLogger
}

func NewClient(log utils.SimpleLogger) *Client {
	return &Client{
		feed: feed.New[Request](),
		log:  log,
	}
}

// RequestHeal asks the repair pipeline to re-validate the chain around block.
// It never blocks the caller.
func (c *Client) RequestHeal(reason string, block *core.GlobalBlockID) {
	c.log.Infow("Heal requested", "reason", reason, "block", block)
	c.feed.Send(Request{Reason: reason, Block: block})
}

// Requests subscribes to heal requests.
func (c *Client) Requests() *feed.Subscription[Request] {
	return c.feed.Subscribe(requestBuffer)
}
