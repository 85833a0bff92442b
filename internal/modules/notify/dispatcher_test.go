package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"metagrow/internal/domain"
	"metagrow/internal/modules/mailer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeMailer struct {
	mu     sync.Mutex
	sent   []mailer.Message
	failTo map[string]error
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	if err, ok := f.failTo[msg.To]; ok {
		return err
	}
	return nil
}

func (f *fakeMailer) recipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.sent))
	for _, m := range f.sent {
		out = append(out, m.To)
	}
	return out
}

func testContact() domain.Contact {
	return domain.Contact{
		ID:        1,
		FirstName: "Jo",
		LastName:  "Doe",
		Email:     "jo@x.com",
		Phone:     "1234567890",
		Message:   "Hello there, I need advice",
		CreatedAt: time.Now(),
	}
}

func TestDispatcher_SendsBothMessages(t *testing.T) {
	fake := &fakeMailer{}
	d := NewDispatcher(fake, "ops@metagrow.com", "noreply@metagrow.com", time.Second, zap.NewNop())

	d.Dispatch(testContact())
	require.NoError(t, d.Shutdown(context.Background()))

	recipients := fake.recipients()
	require.Len(t, recipients, 2)
	assert.Contains(t, recipients, "ops@metagrow.com")
	assert.Contains(t, recipients, "jo@x.com")
}

func TestDispatcher_OneFailureDoesNotStopTheOther(t *testing.T) {
	fake := &fakeMailer{failTo: map[string]error{
		"ops@metagrow.com": errors.New("smtp 550"),
	}}
	d := NewDispatcher(fake, "ops@metagrow.com", "noreply@metagrow.com", time.Second, zap.NewNop())

	d.Dispatch(testContact())
	require.NoError(t, d.Shutdown(context.Background()))

	// The failed business notification must not prevent the auto-reply.
	assert.Contains(t, fake.recipients(), "jo@x.com")
	assert.Len(t, fake.recipients(), 2)
}

func TestDispatcher_NilMailerIsNoOp(t *testing.T) {
	d := NewDispatcher(nil, "ops@metagrow.com", "noreply@metagrow.com", time.Second, zap.NewNop())

	// Must not panic and must not leave goroutines behind.
	d.Dispatch(testContact())
	require.NoError(t, d.Shutdown(context.Background()))
}

func TestDispatcher_ShutdownWaitsForInflightSends(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	slow := &blockingMailer{started: started, release: release}
	d := NewDispatcher(slow, "ops@metagrow.com", "noreply@metagrow.com", time.Second, zap.NewNop())

	d.Dispatch(testContact())
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Shutdown(ctx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, d.Shutdown(context.Background()))
}

type blockingMailer struct {
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func (b *blockingMailer) Send(_ context.Context, _ mailer.Message) error {
	b.once.Do(func() { close(b.started) })
	<-b.release
	return nil
}
