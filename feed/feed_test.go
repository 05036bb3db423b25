package feed_test

import (
	"testing"

	"github.com/starkstream/node/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanOut(t *testing.T) {
	f := feed.New[int]()
	subA := f.Subscribe(1)
	subB := f.Subscribe(1)

	f.Send(7)
	assert.Equal(t, 7, <-subA.Recv())
	assert.Equal(t, 7, <-subB.Recv())
}

func TestSlowSubscriberKeepsLatest(t *testing.T) {
	f := feed.New[int]()
	sub := f.Subscribe(1)

	f.Send(1)
	f.Send(2)
	f.Send(3)

	assert.Equal(t, 3, <-sub.Recv())
}

func TestBufferedDelivery(t *testing.T) {
	f := feed.New[int]()
	sub := f.Subscribe(3)

	for i := 1; i <= 3; i++ {
		f.Send(i)
	}
	for i := 1; i <= 3; i++ {
		assert.Equal(t, i, <-sub.Recv())
	}
}

func TestUnsubscribe(t *testing.T) {
	f := feed.New[int]()
	sub := f.Subscribe(1)
	sub.Unsubscribe()
	require.NotPanics(t, func() {
		sub.Unsubscribe() // idempotent
		f.Send(1)
	})

	_, open := <-sub.Recv()
	assert.False(t, open)
}
