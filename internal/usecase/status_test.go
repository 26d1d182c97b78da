package usecase_test

import (
	"sync"
	"testing"

	"go-marketing-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestStatusStoreInsertionOrder(t *testing.T) {
	store := usecase.NewStatusStore()

	first := store.Append("client-a")
	second := store.Append("client-b")

	checks := store.List()
	assert.Len(t, checks, 2)
	assert.Equal(t, first.ID, checks[0].ID)
	assert.Equal(t, second.ID, checks[1].ID)
	assert.Equal(t, "client-a", checks[0].ClientName)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Timestamp.IsZero())
}

func TestStatusStoreConcurrentAppend(t *testing.T) {
	store := usecase.NewStatusStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Append("client")
			store.List()
		}()
	}
	wg.Wait()

	assert.Len(t, store.List(), 50)
}

func TestStatusStoreListReturnsCopy(t *testing.T) {
	store := usecase.NewStatusStore()
	store.Append("client-a")

	checks := store.List()
	checks[0].ClientName = "mutated"

	assert.Equal(t, "client-a", store.List()[0].ClientName)
}
