package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metagrow/internal/domain"
)

func sampleInput(msg string) domain.ContactInput {
	return domain.ContactInput{
		FirstName: "Jo",
		LastName:  "Doe",
		Email:     "jo@x.com",
		Phone:     "1234567890",
		Service:   "Investment Planning",
		Message:   msg,
	}
}

func TestContactRepository_InsertAssignsSequentialIDs(t *testing.T) {
	repo := NewContactRepository()
	ctx := context.Background()

	first, err := repo.Insert(ctx, sampleInput("Hello there, I need advice"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	// Identical payloads are not deduplicated.
	second, err := repo.Insert(ctx, sampleInput("Hello there, I need advice"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestContactRepository_ListAllPreservesOrderAndFields(t *testing.T) {
	repo := NewContactRepository()
	ctx := context.Background()

	messages := []string{"first message here", "second message here", "third message here"}
	for _, m := range messages {
		_, err := repo.Insert(ctx, sampleInput(m))
		require.NoError(t, err)
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	for i, c := range all {
		assert.Equal(t, int64(i+1), c.ID)
		assert.Equal(t, messages[i], c.Message)
		assert.Equal(t, "Jo", c.FirstName)
		assert.Equal(t, "jo@x.com", c.Email)
	}

	// Mutating the returned slice must not touch the store.
	all[0].Message = "tampered"
	again, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, messages[0], again[0].Message)
}

func TestContactRepository_ConcurrentInsertsGetDistinctContiguousIDs(t *testing.T) {
	repo := NewContactRepository()
	ctx := context.Background()

	const n = 100
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := repo.Insert(ctx, sampleInput("concurrent insert message"))
			assert.NoError(t, err)
			ids <- c.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
		assert.GreaterOrEqual(t, id, int64(1))
		assert.LessOrEqual(t, id, int64(n))
	}
	assert.Len(t, seen, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, count)
}
