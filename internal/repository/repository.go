package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id matches no record. Handlers map it to
// a 404 response.
var ErrNotFound = errors.New("record not found")

// Store is the uniform access contract shared by every entity. Update takes
// an explicit column→value map so a partial update touches exactly the
// fields the caller named.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, id uint, changes map[string]any) (*T, error)
	Delete(ctx context.Context, id uint) error
}

type GormStore[T any] struct {
	db       *gorm.DB
	preloads []string
}

// NewGormStore builds a Store backed by gorm. Preload arguments name
// associations loaded on every read (e.g. "Images", "Technician").
func NewGormStore[T any](db *gorm.DB, preloads ...string) *GormStore[T] {
	return &GormStore[T]{db: db, preloads: preloads}
}

func (s *GormStore[T]) query(ctx context.Context) *gorm.DB {
	q := s.db.WithContext(ctx)
	for _, p := range s.preloads {
		q = q.Preload(p)
	}
	return q
}

func (s *GormStore[T]) List(ctx context.Context) ([]T, error) {
	var records []T
	if err := s.query(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormStore[T]) Get(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := s.query(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *GormStore[T]) Create(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *GormStore[T]) Update(ctx context.Context, id uint, changes map[string]any) (*T, error) {
	var record T
	if err := s.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if len(changes) > 0 {
		if err := s.db.WithContext(ctx).Model(&record).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	// Reload so computed columns (updated_at) and preloads are fresh.
	return s.Get(ctx, id)
}

func (s *GormStore[T]) Delete(ctx context.Context, id uint) error {
	var record T
	res := s.db.WithContext(ctx).Delete(&record, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
