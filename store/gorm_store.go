package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cafeapi/model"
)

// GormStore persists cafes through GORM. It works against any engine GORM
// can open; the service runs it on sqlite or postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Add(cafe *model.Cafe) error {
	if err := s.db.Create(cafe).Error; err != nil {
		return fmt.Errorf("failed to insert cafe: %w", err)
	}
	return nil
}

func (s *GormStore) ListAll() ([]model.Cafe, error) {
	cafes := make([]model.Cafe, 0)
	if err := s.db.Order("id").Find(&cafes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cafes: %w", err)
	}
	return cafes, nil
}

func (s *GormStore) FindByName(name string) (*model.Cafe, error) {
	var cafe model.Cafe
	err := s.db.Where("name = ?", name).Order("id").First(&cafe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch cafe: %w", err)
	}
	return &cafe, nil
}
