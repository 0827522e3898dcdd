package booking

import (
	"context"

	"github.com/mahadevaelectronics/repair-api/internal/audit"
	domain "github.com/mahadevaelectronics/repair-api/internal/domain/booking"
	"github.com/mahadevaelectronics/repair-api/internal/models"
)

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute stores a new booking in the initial pending state. Customers book
// without a technician; assignment happens later through update.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	b *models.Booking,
) (*models.Booking, error) {

	b.Status = string(domain.InitialStatus())
	b.TechnicianID = nil

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return uc.repo.GetBooking(ctx, b.ID)
}
