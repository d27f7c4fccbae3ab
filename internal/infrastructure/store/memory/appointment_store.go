package memory

import (
	"context"
	"sync"

	"github.com/medicore/hospital-system/internal/core/domain"
)

// AppointmentStore keeps appointments in memory with auto-incremented IDs.
// Guarded by a read-write mutex; the notification API serves concurrent
// bookings and list requests.
type AppointmentStore struct {
	mu     sync.RWMutex
	items  []domain.Appointment
	nextID int
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{nextID: 1}
}

func (s *AppointmentStore) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *a
	stored.ID = s.nextID
	s.nextID++
	s.items = append(s.items, stored)

	clone := stored
	return &clone, nil
}

func (s *AppointmentStore) List(_ context.Context) ([]domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Appointment, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *AppointmentStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
