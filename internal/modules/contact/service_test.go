package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"metagrow/internal/domain"
)

// Mock collaborators

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, in domain.ContactInput) (*domain.Contact, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Dispatch(c domain.Contact) {
	m.Called(c)
}

type MockFeed struct {
	mock.Mock
}

func (m *MockFeed) Publish(c domain.Contact) {
	m.Called(c)
}

func storedContact(id int64) *domain.Contact {
	return &domain.Contact{
		ID:        id,
		FirstName: "Jo",
		LastName:  "Doe",
		Email:     "jo@x.com",
		Phone:     "1234567890",
		Message:   "Hello there, I need advice",
		CreatedAt: time.Now(),
	}
}

func TestService_Submit_Success(t *testing.T) {
	repo := new(MockRepository)
	notifier := new(MockNotifier)
	feed := new(MockFeed)
	svc := NewService(repo, notifier, feed, zap.NewNop())

	stored := storedContact(1)
	repo.On("Insert", mock.Anything, mock.Anything).Return(stored, nil)
	notifier.On("Dispatch", *stored).Return()
	feed.On("Publish", *stored).Return()

	got, fieldErrs, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, int64(1), got.ID)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	feed.AssertExpectations(t)
}

func TestService_Submit_InvalidInputTouchesNothing(t *testing.T) {
	repo := new(MockRepository)
	notifier := new(MockNotifier)
	svc := NewService(repo, notifier, nil, zap.NewNop())

	req := validRequest()
	req.FirstName = "J"
	req.Phone = "123"

	got, fieldErrs, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Len(t, fieldErrs, 2)

	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestService_Submit_InsertFailureIsFatal(t *testing.T) {
	repo := new(MockRepository)
	notifier := new(MockNotifier)
	svc := NewService(repo, notifier, nil, zap.NewNop())

	repo.On("Insert", mock.Anything, mock.Anything).Return(nil, errors.New("store down"))

	got, fieldErrs, err := svc.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Empty(t, fieldErrs)

	notifier.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestService_Submit_NotifierPanicIsSwallowed(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, panickyNotifier{}, nil, zap.NewNop())

	stored := storedContact(4)
	repo.On("Insert", mock.Anything, mock.Anything).Return(stored, nil)

	got, fieldErrs, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, int64(4), got.ID)
}

type panickyNotifier struct{}

func (panickyNotifier) Dispatch(domain.Contact) {
	panic("mail provider exploded")
}

func TestService_List(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockNotifier), nil, zap.NewNop())

	want := []domain.Contact{*storedContact(1), *storedContact(2)}
	repo.On("ListAll", mock.Anything).Return(want, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
