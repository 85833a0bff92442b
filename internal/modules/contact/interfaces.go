package contact

import (
	"context"

	"metagrow/internal/domain"
)

// Repository is the append-only submission store the pipeline writes to.
type Repository interface {
	Insert(ctx context.Context, in domain.ContactInput) (*domain.Contact, error)
	ListAll(ctx context.Context) ([]domain.Contact, error)
}

// Notifier delivers the business notification and the auto-reply for a stored
// submission. Implementations are best-effort and must never block the caller
// on network I/O.
type Notifier interface {
	Dispatch(c domain.Contact)
}

// FeedPublisher pushes a stored submission to any live admin dashboards.
type FeedPublisher interface {
	Publish(c domain.Contact)
}
