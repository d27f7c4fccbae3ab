package ports

import (
	"context"

	"github.com/medicore/hospital-system/internal/core/domain"
)

// AppointmentRepository defines persistence operations for appointments.
// The in-memory implementation is the only one in scope; the interface keeps
// the seam for a transactional store.
type AppointmentRepository interface {
	// Create stores the appointment and assigns its ID.
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	List(ctx context.Context) ([]domain.Appointment, error)
	Count(ctx context.Context) int
}
