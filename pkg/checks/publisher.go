package checks

import (
	"context"
	"sync"

	"github.com/chainguard-dev/clog"
)

// Publisher delivers a built ChecksDetails to a backend. Implementations
// own serialization and transport; the model makes no assumption about the
// wire format beyond the field semantics.
type Publisher interface {
	Publish(ctx context.Context, details ChecksDetails) error
}

// PublisherFactory creates a Publisher when it supports the current
// environment. Returning false lets the next registered factory try.
type PublisherFactory interface {
	CreatePublisher(ctx context.Context) (Publisher, bool)
}

var (
	factoriesMu sync.Mutex
	factories   []PublisherFactory
)

// RegisterFactory adds a factory consulted by FindPublisher, in
// registration order.
func RegisterFactory(factory PublisherFactory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories = append(factories, factory)
}

// FindPublisher returns a publisher from the first registered factory that
// provides one. When publishing is disabled or no factory matches, it falls
// back to the NullPublisher.
func FindPublisher(ctx context.Context, settings Settings) Publisher {
	log := clog.FromContext(ctx)
	if settings.SkipPublishing {
		log.Debug("check publishing is disabled, using null publisher")
		return NullPublisher{}
	}

	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	for _, factory := range factories {
		if publisher, ok := factory.CreatePublisher(ctx); ok {
			if settings.Verbose {
				log.With("publisher", publisher).Info("selected check publisher")
			}
			return publisher
		}
	}

	log.Debug("no publisher factory matched, using null publisher")
	return NullPublisher{}
}

// NullPublisher discards every check it is given.
type NullPublisher struct{}

// Publish drops the details and logs at debug level.
func (NullPublisher) Publish(ctx context.Context, details ChecksDetails) error {
	clog.FromContext(ctx).With("check", details.Name()).Debug("discarding check details")
	return nil
}
