//go:build unit

package rolekit

import (
	"context"

	"github.com/agentmartinv1/rolekit/internal/core/domain"
	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

// failingDocStore fails every operation with the given error.
type failingDocStore struct {
	err error
}

func (f *failingDocStore) Get(ctx context.Context, collection, key string) (ports.Document, error) {
	return nil, f.err
}

func (f *failingDocStore) Set(ctx context.Context, collection, key string, fields ports.Document) error {
	return f.err
}

func (f *failingDocStore) Update(ctx context.Context, collection, key string, fields ports.Document) error {
	return f.err
}

func (f *failingDocStore) List(ctx context.Context, collection string) (map[string]ports.Document, error) {
	return nil, f.err
}

// blockingDocStore delays Get until released, so a test can change
// provider state while a resolution is in flight.
type blockingDocStore struct {
	inner   ports.DocumentStore
	started chan struct{}
	release chan struct{}
}

func newBlockingDocStore(inner ports.DocumentStore) *blockingDocStore {
	return &blockingDocStore{
		inner:   inner,
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (b *blockingDocStore) Get(ctx context.Context, collection, key string) (ports.Document, error) {
	close(b.started)
	<-b.release
	return b.inner.Get(ctx, collection, key)
}

func (b *blockingDocStore) Set(ctx context.Context, collection, key string, fields ports.Document) error {
	return b.inner.Set(ctx, collection, key, fields)
}

func (b *blockingDocStore) Update(ctx context.Context, collection, key string, fields ports.Document) error {
	return b.inner.Update(ctx, collection, key, fields)
}

func (b *blockingDocStore) List(ctx context.Context, collection string) (map[string]ports.Document, error) {
	return b.inner.List(ctx, collection)
}

// countingDocStore counts reads, for the no-caching property.
type countingDocStore struct {
	inner ports.DocumentStore
	gets  int
}

func (c *countingDocStore) Get(ctx context.Context, collection, key string) (ports.Document, error) {
	c.gets++
	return c.inner.Get(ctx, collection, key)
}

func (c *countingDocStore) Set(ctx context.Context, collection, key string, fields ports.Document) error {
	return c.inner.Set(ctx, collection, key, fields)
}

func (c *countingDocStore) Update(ctx context.Context, collection, key string, fields ports.Document) error {
	return c.inner.Update(ctx, collection, key, fields)
}

func (c *countingDocStore) List(ctx context.Context, collection string) (map[string]ports.Document, error) {
	return c.inner.List(ctx, collection)
}

// failingProvider rejects every credential operation.
type failingProvider struct {
	err error
}

func (f *failingProvider) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	return nil, f.err
}

func (f *failingProvider) SignUp(ctx context.Context, email, password string) (*domain.Identity, error) {
	return nil, f.err
}

func (f *failingProvider) SignOut(ctx context.Context) error {
	return f.err
}

func (f *failingProvider) IdentityChanges() ports.Subscription {
	return emptySubscription{ch: make(chan *domain.Identity)}
}

type emptySubscription struct {
	ch chan *domain.Identity
}

func (s emptySubscription) Changes() <-chan *domain.Identity { return s.ch }
func (s emptySubscription) Close()                           {}
