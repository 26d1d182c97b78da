package usecase

import (
	"sync"
	"time"

	"go-marketing-backend/internal/domain"

	"github.com/google/uuid"
)

// statusStore is the in-memory demo log behind /api/status. Append-only,
// insertion-ordered, unbounded, gone on restart.
type statusStore struct {
	mu     sync.Mutex
	checks []domain.StatusCheck
}

func NewStatusStore() domain.StatusStore {
	return &statusStore{}
}

func (s *statusStore) Append(clientName string) domain.StatusCheck {
	check := domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.checks = append(s.checks, check)
	s.mu.Unlock()

	return check
}

func (s *statusStore) List() []domain.StatusCheck {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.StatusCheck, len(s.checks))
	copy(out, s.checks)
	return out
}
