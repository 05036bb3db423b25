// Package feed is a minimal in-process broadcast primitive. Ingestion
// publishes stream messages through it and every open gRPC stream holds a
// subscription.
package feed

import "sync"

type Feed[T any] struct {
	mu     sync.Mutex // protects subs and nextID.
	subs   map[uint64]*Subscription[T]
	nextID uint64
}

type Subscription[T any] struct {
	c         chan T
	f         *Feed[T]
	unsubOnce sync.Once
	id        uint64
}

func New[T any]() *Feed[T] {
	return &Feed[T]{
		subs: make(map[uint64]*Subscription[T]),
	}
}

// Subscribe returns a new subscription with a buffer of size buffer. When the
// buffer is full, Send drops the oldest value so the latest one is always
// available.
func (f *Feed[T]) Subscribe(buffer int) *Subscription[T] {
	if buffer < 1 {
		buffer = 1
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &Subscription[T]{
		c:  make(chan T, buffer),
		f:  f,
		id: f.nextID,
	}
	f.nextID++
	f.subs[s.id] = s
	return s
}

// Send broadcasts v to all subscribers without blocking. Slow subscribers lose
// their oldest buffered value.
func (f *Feed[T]) Send(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, sub := range f.subs {
		select {
		case sub.c <- v:
		default:
			// Make room by dropping the oldest value. The inner default case
			// covers a subscriber receiving concurrently.
			select {
			case <-sub.c:
			default:
			}
			sub.c <- v
		}
	}
}

func (s *Subscription[T]) Recv() <-chan T {
	return s.c
}

func (s *Subscription[T]) Unsubscribe() {
	s.unsubOnce.Do(func() {
		s.f.mu.Lock()
		defer s.f.mu.Unlock()
		close(s.c)
		delete(s.f.subs, s.id)
	})
}
