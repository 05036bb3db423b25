package grpc

import "time"

// EventListener is notified after every RPC completes. Implementations must
// not block.
type EventListener interface {
	OnRPC(method string, took time.Duration, err error)
}

// SelectiveListener is an EventListener running only the callbacks that are
// set.
type SelectiveListener struct {
	OnRPCCb func(method string, took time.Duration, err error)
}

func (l *SelectiveListener) OnRPC(method string, took time.Duration, err error) {
	if l.OnRPCCb != nil {
		l.OnRPCCb(method, took, err)
	}
}
