package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ormeredost-cmd/withdraw-server/internal/models"
)

type userStore struct {
	db *gorm.DB
}

func (s *userStore) FindByProfileID(ctx context.Context, profileID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userStore) FindByProfileIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := s.db.WithContext(ctx).Where("profile_id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
