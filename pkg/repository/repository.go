package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by First when no row matches.
var ErrNotFound = errors.New("record_not_found")

// Repository is a thin generic data-access layer over gorm for simple
// record types. Services with bespoke queries talk to gorm directly.
type Repository[T any] interface {
	Find(ctx context.Context, conds ...any) ([]T, error)
	First(ctx context.Context, conds ...any) (*T, error)
	Create(ctx context.Context, record *T) error
	Save(ctx context.Context, record *T) error
	Delete(ctx context.Context, conds ...any) error
}

type store[T any] struct {
	db *gorm.DB
}

// ProvideStore builds a Repository backed by the given database handle.
func ProvideStore[T any](db *gorm.DB) Repository[T] {
	return &store[T]{db: db}
}

func (s *store[T]) Find(ctx context.Context, conds ...any) ([]T, error) {
	var records []T
	if err := s.db.WithContext(ctx).Find(&records, conds...).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *store[T]) First(ctx context.Context, conds ...any) (*T, error) {
	var record T
	err := s.db.WithContext(ctx).First(&record, conds...).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *store[T]) Create(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *store[T]) Save(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Save(record).Error
}

func (s *store[T]) Delete(ctx context.Context, conds ...any) error {
	var record T
	return s.db.WithContext(ctx).Delete(&record, conds...).Error
}
