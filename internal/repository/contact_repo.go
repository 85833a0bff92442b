package repository

import (
	"context"
	"sync"
	"time"

	"metagrow/internal/domain"
)

// ContactRepository is the in-memory, append-only store for contact-form
// submissions. It owns the collection exclusively: identifiers start at 1,
// increase by 1 per insert and are never reused. The increment-and-append is
// the one critical section; everything else copies out.
type ContactRepository struct {
	mu     sync.Mutex
	nextID int64
	items  []domain.Contact
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{nextID: 1}
}

// Insert assigns the next identifier and the current timestamp, appends the
// record and returns the stored copy. Two concurrent inserts never observe
// the same identifier.
func (r *ContactRepository) Insert(_ context.Context, in domain.ContactInput) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := domain.Contact{
		ID:        r.nextID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Service:   in.Service,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	r.nextID++
	r.items = append(r.items, c)

	return &c, nil
}

// ListAll returns every stored submission in insertion order. The returned
// slice is a copy; callers cannot mutate the store through it.
func (r *ContactRepository) ListAll(_ context.Context) ([]domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Contact, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Count returns the number of stored submissions.
func (r *ContactRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items), nil
}
