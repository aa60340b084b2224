package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ormeredost-cmd/withdraw-server/internal/models"
)

type bankDetailStore struct {
	db *gorm.DB
}

func (s *bankDetailStore) FindByUserID(ctx context.Context, userID string) (*models.BankDetail, error) {
	var bank models.BankDetail
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&bank).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

func (s *bankDetailStore) FindAll(ctx context.Context) ([]models.BankDetail, error) {
	var banks []models.BankDetail
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&banks).Error; err != nil {
		return nil, err
	}
	return banks, nil
}

func (s *bankDetailStore) FindAllByUserID(ctx context.Context, userID string) ([]models.BankDetail, error) {
	var banks []models.BankDetail
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&banks).Error; err != nil {
		return nil, err
	}
	return banks, nil
}

func (s *bankDetailStore) UpdateByUserID(ctx context.Context, userID string, patch map[string]interface{}) (*models.BankDetail, error) {
	res := s.db.WithContext(ctx).Model(&models.BankDetail{}).Where("user_id = ?", userID).Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.FindByUserID(ctx, userID)
}
