package contact

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"metagrow/internal/domain"
)

// Service runs the submission pipeline: validate, store, notify, respond.
type Service struct {
	contacts Repository
	notifier Notifier
	feed     FeedPublisher
	log      *zap.Logger
}

func NewService(contacts Repository, notifier Notifier, feed FeedPublisher, log *zap.Logger) *Service {
	return &Service{
		contacts: contacts,
		notifier: notifier,
		feed:     feed,
		log:      log,
	}
}

// Submit validates the raw request and, when it passes, persists it and kicks
// off the notification emails. Validation failures come back as field errors
// with no store mutation and no notification attempt. Notification and live
// feed delivery are best-effort: once the insert succeeds, nothing that
// happens after it can turn the submission into a failure.
func (s *Service) Submit(ctx context.Context, req SubmitContactRequest) (*domain.Contact, []FieldError, error) {
	if fieldErrs := ValidateSubmission(req); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	stored, err := s.contacts.Insert(ctx, req.toInput())
	if err != nil {
		return nil, nil, fmt.Errorf("insert contact: %w", err)
	}

	s.log.Info("contact submission stored",
		zap.Int64("contact_id", stored.ID),
		zap.String("service", stored.Service),
	)

	s.dispatchBestEffort(*stored)

	return stored, nil, nil
}

// List returns all stored submissions in insertion order.
func (s *Service) List(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.contacts.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// dispatchBestEffort hands the stored record to the notifier and the live
// feed. Both are fire-and-forget; a panic in either is logged and discarded
// so it cannot undo the insert's success.
func (s *Service) dispatchBestEffort(c domain.Contact) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("post-insert dispatch panicked",
				zap.Int64("contact_id", c.ID),
				zap.Any("panic", r),
			)
		}
	}()

	s.notifier.Dispatch(c)
	if s.feed != nil {
		s.feed.Publish(c)
	}
}
