//go:build unit

package identity

import (
	"testing"
	"time"

	"github.com/agentmartinv1/rolekit/internal/core/domain"
)

func recv(t *testing.T, sub interface {
	Changes() <-chan *domain.Identity
}) *domain.Identity {
	t.Helper()
	select {
	case id := <-sub.Changes():
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a stream element")
		return nil
	}
}

func TestBroadcaster_ReplaysLatestOnSubscribe(t *testing.T) {
	b := newBroadcaster()

	// Before any publish, the latest state is "signed out".
	sub := b.subscribe()
	if id := recv(t, sub); id != nil {
		t.Errorf("initial element = %+v, want nil", id)
	}
	sub.Close()

	b.publish(&domain.Identity{SubjectID: "u1"})

	// A late subscriber sees the current state without waiting.
	sub = b.subscribe()
	defer sub.Close()
	if id := recv(t, sub); id == nil || id.SubjectID != "u1" {
		t.Errorf("replayed element = %+v, want u1", id)
	}
}

func TestBroadcaster_Multicast(t *testing.T) {
	b := newBroadcaster()

	first := b.subscribe()
	second := b.subscribe()
	defer first.Close()
	defer second.Close()

	// Drain the replayed initial elements.
	recv(t, first)
	recv(t, second)

	b.publish(&domain.Identity{SubjectID: "u2"})

	for _, sub := range []interface {
		Changes() <-chan *domain.Identity
	}{first, second} {
		if id := recv(t, sub); id == nil || id.SubjectID != "u2" {
			t.Errorf("element = %+v, want u2 on every subscriber", id)
		}
	}
}

// A subscriber that does not keep up skips intermediate states but
// always observes the newest one.
func TestBroadcaster_ConflatesForSlowSubscribers(t *testing.T) {
	b := newBroadcaster()

	sub := b.subscribe()
	defer sub.Close()

	b.publish(&domain.Identity{SubjectID: "u1"})
	b.publish(&domain.Identity{SubjectID: "u2"})
	b.publish(&domain.Identity{SubjectID: "u3"})

	if id := recv(t, sub); id == nil || id.SubjectID != "u3" {
		t.Errorf("element = %+v, want the newest state u3", id)
	}
}

func TestSubscription_CloseIsIdempotentAndUnsubscribes(t *testing.T) {
	b := newBroadcaster()

	sub := b.subscribe()
	sub.Close()
	sub.Close() // second close must not panic

	// Publishing after close must not panic or block.
	b.publish(&domain.Identity{SubjectID: "u1"})

	if _, ok := <-sub.Changes(); ok {
		t.Error("channel still open after Close")
	}
}

func TestBroadcaster_CloseOneSubscriberLeavesOthers(t *testing.T) {
	b := newBroadcaster()

	closed := b.subscribe()
	kept := b.subscribe()
	defer kept.Close()
	recv(t, kept)

	closed.Close()
	b.publish(&domain.Identity{SubjectID: "u1"})

	if id := recv(t, kept); id == nil || id.SubjectID != "u1" {
		t.Errorf("surviving subscriber element = %+v, want u1", id)
	}
}
