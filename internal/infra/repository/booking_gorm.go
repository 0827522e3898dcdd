package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/mahadevaelectronics/repair-api/internal/domain/booking"
	"github.com/mahadevaelectronics/repair-api/internal/models"
	"github.com/mahadevaelectronics/repair-api/internal/repository"
)

type BookingGormRepository struct {
	db    *gorm.DB
	store *repository.GormStore[models.Booking]
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{
		db:    db,
		store: repository.NewGormStore[models.Booking](db, "Technician"),
	}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return r.store.List(ctx)
}

func (r *BookingGormRepository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return r.store.Get(ctx, id)
}

func (r *BookingGormRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	return r.store.Create(ctx, b)
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	id uint,
	changes map[string]any,
) (*models.Booking, error) {
	return r.store.Update(ctx, id, changes)
}

func (r *BookingGormRepository) DeleteBooking(ctx context.Context, id uint) error {
	return r.store.Delete(ctx, id)
}

// --------------------------------------------------
// Technician
// --------------------------------------------------

func (r *BookingGormRepository) TechnicianExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Technician{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
