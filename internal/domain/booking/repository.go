package booking

import (
	"context"

	"github.com/mahadevaelectronics/repair-api/internal/models"
)

type Repository interface {
	// -------- Booking --------
	ListBookings(ctx context.Context) ([]models.Booking, error)

	GetBooking(ctx context.Context, id uint) (*models.Booking, error)

	CreateBooking(ctx context.Context, b *models.Booking) error

	UpdateBooking(
		ctx context.Context,
		id uint,
		changes map[string]any,
	) (*models.Booking, error)

	DeleteBooking(ctx context.Context, id uint) error

	// -------- Technician --------
	TechnicianExists(ctx context.Context, id uint) (bool, error)
}
