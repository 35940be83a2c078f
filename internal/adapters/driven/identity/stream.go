package identity

import (
	"sync"

	"github.com/agentmartinv1/rolekit/internal/core/domain"
	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

// broadcaster multicasts session-state changes to any number of
// subscribers, replaying the latest state on subscribe. Subscriber
// channels hold one element and are conflated: a slow consumer skips
// intermediate states but always observes the newest one, which is the
// right semantics for a "current identity" stream.
type broadcaster struct {
	mu      sync.Mutex
	current *domain.Identity
	subs    map[*subscription]struct{}
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[*subscription]struct{})}
}

// publish records the new state and fans it out.
func (b *broadcaster) publish(identity *domain.Identity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = identity
	for sub := range b.subs {
		sub.push(identity)
	}
}

// subscribe registers a new subscriber and replays the current state.
func (b *broadcaster) subscribe() ports.Subscription {
	sub := &subscription{
		ch:     make(chan *domain.Identity, 1),
		parent: b,
	}
	b.mu.Lock()
	b.subs[sub] = struct{}{}
	sub.push(b.current)
	b.mu.Unlock()
	return sub
}

func (b *broadcaster) unsubscribe(sub *subscription) {
	b.mu.Lock()
	delete(b.subs, sub)
	b.mu.Unlock()
}

type subscription struct {
	ch     chan *domain.Identity
	parent *broadcaster

	closeMu sync.Mutex
	closed  bool
}

// push delivers latest-wins: if the buffer still holds a stale
// element, drop it in favor of the new one.
func (s *subscription) push(identity *domain.Identity) {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- identity:
	default:
		select {
		case <-s.ch:
		default:
		}
		s.ch <- identity
	}
}

// Changes yields the current principal, or nil when signed out.
func (s *subscription) Changes() <-chan *domain.Identity {
	return s.ch
}

// Close tears down the subscription. Safe to call more than once.
func (s *subscription) Close() {
	s.parent.unsubscribe(s)
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

var _ ports.Subscription = (*subscription)(nil)
