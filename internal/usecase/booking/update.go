package booking

import (
	"context"
	"time"

	"github.com/mahadevaelectronics/repair-api/internal/audit"
	domain "github.com/mahadevaelectronics/repair-api/internal/domain/booking"
	"github.com/mahadevaelectronics/repair-api/internal/httperr"
	"github.com/mahadevaelectronics/repair-api/internal/models"
)

type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
	}
}

// UpdateInput carries the fields present in the request; nil means "leave
// unchanged".
type UpdateInput struct {
	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string
	ServiceType   *string
	Description   *string
	PreferredDate *time.Time
	Status        *string
	TechnicianID  *uint
}

// Execute validates the requested state change and applies exactly the
// fields present in the input. A status outside the booking state set and a
// technician id that matches no technician are both rejected before any
// write happens.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	id uint,
	in UpdateInput,
) (*models.Booking, error) {

	if in.Status != nil && !domain.IsValid(domain.Status(*in.Status)) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if in.TechnicianID != nil {
		exists, err := uc.repo.TechnicianExists(ctx, *in.TechnicianID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, httperr.ErrBusiness("technician_not_found")
		}
	}

	changes := map[string]any{}
	if in.CustomerName != nil {
		changes["customer_name"] = *in.CustomerName
	}
	if in.CustomerPhone != nil {
		changes["customer_phone"] = *in.CustomerPhone
	}
	if in.CustomerEmail != nil {
		changes["customer_email"] = *in.CustomerEmail
	}
	if in.ServiceType != nil {
		changes["service_type"] = *in.ServiceType
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.PreferredDate != nil {
		changes["preferred_date"] = *in.PreferredDate
	}
	if in.Status != nil {
		changes["status"] = *in.Status
	}
	if in.TechnicianID != nil {
		changes["technician_id"] = *in.TechnicianID
	}

	updated, err := uc.repo.UpdateBooking(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &updated.ID,
		Metadata: changes,
	})

	return updated, nil
}
